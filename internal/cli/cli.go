// Package cli turns os.Args-style input into a validated Command. All input
// validation happens here, before any network traffic: a command that parses
// is a command that can be dispatched.
package cli

import (
	"fmt"
	"strings"

	"github.com/raysh454/yobu/internal/utils"
)

// Method is the HTTP method of a parsed command. The set is closed: adding a
// method means a new constant here and a new arm in ParseArgs.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// Command is a fully validated request specification. Pairs is nil for GET
// and preserves CLI argument order for POST.
type Command struct {
	Method Method
	URL    string
	Pairs  []KvPair
}

// ParseArgs parses the arguments after the program name into a Command.
// Every returned error is an argument error: the caller prints usage and
// exits nonzero without attempting a request.
func ParseArgs(args []string) (*Command, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("missing subcommand")
	}

	sub := strings.ToLower(args[0])
	switch sub {
	case "get":
		if len(args) < 2 {
			return nil, fmt.Errorf("get: missing url")
		}
		if len(args) > 2 {
			return nil, fmt.Errorf("get: unexpected argument %q", args[2])
		}
		u, err := utils.ValidateURL(args[1])
		if err != nil {
			return nil, fmt.Errorf("get: %w", err)
		}
		return &Command{Method: MethodGet, URL: u}, nil

	case "post":
		if len(args) < 2 {
			return nil, fmt.Errorf("post: missing url")
		}
		u, err := utils.ValidateURL(args[1])
		if err != nil {
			return nil, fmt.Errorf("post: %w", err)
		}
		pairs := make([]KvPair, 0, len(args)-2)
		for _, arg := range args[2:] {
			pair, err := ParseKvPair(arg)
			if err != nil {
				return nil, fmt.Errorf("post: %w", err)
			}
			pairs = append(pairs, pair)
		}
		return &Command{Method: MethodPost, URL: u, Pairs: pairs}, nil

	default:
		return nil, fmt.Errorf("unknown subcommand %q", args[0])
	}
}

// Usage returns the help text printed on argument errors.
func Usage() string {
	return `usage:
  yobu get <url>
  yobu post <url> [key=value ...]

get issues an HTTP GET to <url> and prints the response.
post serializes the key=value pairs into a JSON object and issues an
HTTP POST to <url> with that body.
`
}
