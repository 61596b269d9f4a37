package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTransport           = errors.New("transport failure")
	ErrAuth                = errors.New("authentication rejected")
	ErrProfile             = errors.New("profile unavailable")
	ErrLink                = errors.New("wallet link failed")
	ErrQuest               = errors.New("quest failure")
	ErrConfig              = errors.New("invalid configuration")
	ErrMalformedCredential = errors.New("malformed credential")
)

// TransportError is returned once every attempt of a request has failed.
type TransportError struct {
	Method     string
	Path       string
	Attempts   int
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed after %d attempt(s): status %d: %s", e.Method, e.Path, e.Attempts, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s failed after %d attempt(s): %v", e.Method, e.Path, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConfig, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
