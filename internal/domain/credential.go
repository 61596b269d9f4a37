package domain

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

type UserID string

// AccountCredential is one account's init-data blob. Raw is sent to the
// service untouched; UserID and DisplayName are only used locally.
type AccountCredential struct {
	Raw         string
	UserID      UserID
	DisplayName string
}

func ParseCredential(raw string) (AccountCredential, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AccountCredential{}, fmt.Errorf("%w: empty blob", ErrMalformedCredential)
	}

	values, err := url.ParseQuery(trimmed)
	if err != nil {
		return AccountCredential{}, fmt.Errorf("%w: decode query: %v", ErrMalformedCredential, err)
	}

	user := values.Get("user")
	if user == "" {
		return AccountCredential{}, fmt.Errorf("%w: missing user field", ErrMalformedCredential)
	}
	if !gjson.Valid(user) {
		return AccountCredential{}, fmt.Errorf("%w: user field is not valid json", ErrMalformedCredential)
	}

	parsed := gjson.Parse(user)
	id := strings.TrimSpace(parsed.Get("id").String())
	if id == "" {
		return AccountCredential{}, fmt.Errorf("%w: missing user id", ErrMalformedCredential)
	}

	return AccountCredential{
		Raw:         trimmed,
		UserID:      UserID(id),
		DisplayName: displayName(parsed, id),
	}, nil
}

func displayName(user gjson.Result, id string) string {
	if username := strings.TrimSpace(user.Get("username").String()); username != "" {
		return username
	}

	name := strings.TrimSpace(strings.Join([]string{
		strings.TrimSpace(user.Get("first_name").String()),
		strings.TrimSpace(user.Get("last_name").String()),
	}, " "))
	if name != "" {
		return name
	}

	return id
}
