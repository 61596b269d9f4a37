package domain

import "time"

type AccountProfile struct {
	UserID      string            `json:"userId" yaml:"user_id"`
	Username    string            `json:"username" yaml:"username"`
	Balance     float64           `json:"balance" yaml:"balance"`
	Wallet      *string           `json:"wallet" yaml:"wallet"`
	ClaimStreak ClaimStreak       `json:"claimStreak" yaml:"claim_streak"`
	Allocation  AllocationSummary `json:"allocation" yaml:"allocation"`
}

func (p AccountProfile) HasWallet() bool {
	return p.Wallet != nil && *p.Wallet != ""
}

type ClaimStreak struct {
	CurrentStreak int       `json:"currentStreak" yaml:"current_streak"`
	LastClaimDate time.Time `json:"lastClaimDate" yaml:"last_claim_date"`
}

type AllocationSummary struct {
	Hamster  HamsterAllocation  `json:"hamster" yaml:"hamster"`
	Telegram TelegramAllocation `json:"telegram" yaml:"telegram"`
	Paws     PawsAllocation     `json:"paws" yaml:"paws"`
	Dogs     DogsAllocation     `json:"dogs" yaml:"dogs"`
	Notcoin  NotcoinAllocation  `json:"notcoin" yaml:"notcoin"`
	Total    float64            `json:"total" yaml:"total"`
}

type HamsterAllocation struct {
	Initial   float64 `json:"initial" yaml:"initial"`
	Converted float64 `json:"converted" yaml:"converted"`
}

type TelegramAllocation struct {
	Premium float64 `json:"premium" yaml:"premium"`
	Year    float64 `json:"year" yaml:"year"`
	Month   float64 `json:"month" yaml:"month"`
	Total   float64 `json:"total" yaml:"total"`
}

type PawsAllocation struct {
	Initial   float64 `json:"initial" yaml:"initial"`
	Converted float64 `json:"converted" yaml:"converted"`
}

type DogsAllocation struct {
	Initial   float64 `json:"initial" yaml:"initial"`
	Converted float64 `json:"converted" yaml:"converted"`
	Percent   float64 `json:"percent" yaml:"percent"`
}

type NotcoinAllocation struct {
	Initial   float64 `json:"initial" yaml:"initial"`
	Converted float64 `json:"converted" yaml:"converted"`
	Percent   float64 `json:"percent" yaml:"percent"`
}
