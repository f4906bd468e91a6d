package utils

import (
	"errors"
	"net"
	"net/url"

	"golang.org/x/net/idna"
)

// Validation errors. They are wrapped in *url.Error so callers see the
// offending input, and can still be matched with errors.Is.
var (
	ErrEmptyURL      = errors.New("empty url")
	ErrMissingScheme = errors.New("missing scheme")
	ErrMissingHost   = errors.New("missing host")
)

// ValidateURL checks that raw is a syntactically valid absolute URL: it must
// parse, carry a scheme and a host, and hostnames (when not IP literals) must
// survive IDNA lookup mapping. The input is returned unchanged on success —
// this is a gate, not a transformation, and the request goes out with the
// exact string the user typed. It is the exact string that is validated, too:
// padded input fails here instead of surfacing later as a transport error.
func ValidateURL(raw string) (string, error) {
	if raw == "" {
		return "", &url.Error{Op: "validate", URL: raw, Err: ErrEmptyURL}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" {
		return "", &url.Error{Op: "validate", URL: raw, Err: ErrMissingScheme}
	}
	if u.Host == "" {
		return "", &url.Error{Op: "validate", URL: raw, Err: ErrMissingHost}
	}

	// IDN hostnames must map to punycode; IP literals are exempt since they
	// are not subject to IDNA rules.
	if host := u.Hostname(); host != "" && net.ParseIP(host) == nil {
		if _, err := idna.Lookup.ToASCII(host); err != nil {
			return "", &url.Error{Op: "validate", URL: raw, Err: err}
		}
	}

	return raw, nil
}
