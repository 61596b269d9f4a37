package application

import (
	"context"
	"time"
)

const (
	DefaultAccountDelay  = time.Second
	DefaultCycleInterval = 24 * time.Hour
)

type Pacing struct {
	QuestDelay    time.Duration
	AccountDelay  time.Duration
	CycleInterval time.Duration
}

func DefaultPacing() Pacing {
	return Pacing{
		QuestDelay:    DefaultQuestDelay,
		AccountDelay:  DefaultAccountDelay,
		CycleInterval: DefaultCycleInterval,
	}
}

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

type RunOptions struct {
	Once bool
	// Wait replaces the clock sleep between cycles, e.g. with a countdown.
	Wait WaitFunc
}
