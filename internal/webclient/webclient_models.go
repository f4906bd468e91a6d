package webclient

import (
	"net/http"
	"time"
)

type Request struct {
	Method  string
	URL     string
	Headers http.Header
	Body    []byte
}

type Response struct {
	Request    *Request
	Proto      string
	StatusCode int
	Headers    http.Header
	Body       []byte
	FetchedAt  time.Time
}
