package collector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches any *NotFoundError through errors.Is.
var ErrNotFound = errors.New("stock ticker not found")

// NotFoundError reports that a provider returned no rows for a symbol.
type NotFoundError struct {
	Symbol   string
	Provider string
	Reason   string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("stock ticker %q not found", e.Symbol)
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// looksNotFound reports whether a provider error message describes an
// unknown or delisted symbol.
func looksNotFound(msg string) bool {
	msg = strings.ToLower(msg)
	for _, s := range []string{"not found", "no data found", "delisted", "invalid symbol"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
