package webclient

import "context"

// WebClient is the outbound HTTP collaborator. Implementations own connection
// management, TLS, redirects and default-header injection; callers see one
// request in, one response out. HTTP status codes are never interpreted here:
// a 500 is a successful Do, only transport failures return an error.
type WebClient interface {
	Do(ctx context.Context, req *Request) (*Response, error)

	Close() error
}
