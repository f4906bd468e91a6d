package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingDelimiter is returned when a body argument has no '=' in it.
var ErrMissingDelimiter = errors.New("missing '=' delimiter")

// KvPair is a single key=value CLI argument in structured form. Pairs are
// built once at parse time and consumed when the POST body is assembled.
type KvPair struct {
	Key   string
	Value string
}

// ParseKvPair splits s at the first '='. Everything before the delimiter is
// the key, everything after is the value, so "a=b=c" parses to {a, b=c}.
// Either side may be empty; the only requirement is that a split point
// exists.
func ParseKvPair(s string) (KvPair, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return KvPair{}, fmt.Errorf("parse %q: %w", s, ErrMissingDelimiter)
	}
	return KvPair{Key: key, Value: value}, nil
}
