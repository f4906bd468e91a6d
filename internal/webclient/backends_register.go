package webclient

import (
	"github.com/raysh454/yobu/internal/logging"
)

func init() {
	RegisterDefaultBackends()
}

// RegisterDefaultBackends registers the nethttp and resty backends. It runs
// from init() so the default backends are always available to NewWebClient;
// calling it again is harmless.
func RegisterDefaultBackends() {
	RegisterBackend(string(BackendNetHTTP), func(cfg Config, logger logging.Logger) (WebClient, error) {
		return NewNetHTTPClient(cfg, logger, nil)
	})

	RegisterBackend(string(BackendResty), func(cfg Config, logger logging.Logger) (WebClient, error) {
		return NewRestyClient(cfg, logger)
	})
}
