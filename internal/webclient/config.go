package webclient

import (
	"net/http"
	"time"
)

// Version is the tool version reported in the default User-Agent.
const Version = "0.1.0"

type Backend string

const (
	BackendNetHTTP Backend = "nethttp"
	BackendResty   Backend = "resty"
)

// Config is the minimal set of knobs shared by all webclient backends.
type Config struct {
	Backend Backend

	// Timeout bounds a whole request. Zero means the backend default.
	Timeout time.Duration

	// DefaultHeaders are attached to every outgoing request. A header the
	// request already carries is never overridden.
	DefaultHeaders http.Header
}

// DefaultConfig returns a Config with the nethttp backend and the two fixed
// default headers every request carries: a marker header identifying the
// tool, and its User-Agent.
func DefaultConfig() Config {
	h := http.Header{}
	h.Set("X-Powered-By", "yobu")
	h.Set("User-Agent", "yobu/"+Version)

	return Config{
		Backend:        BackendNetHTTP,
		Timeout:        30 * time.Second,
		DefaultHeaders: h,
	}
}
