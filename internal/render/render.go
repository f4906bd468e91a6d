// Package render formats an HTTP response for the terminal: status line,
// headers, blank line, body. JSON bodies are re-indented, everything else is
// printed verbatim.
package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"sort"
	"unicode/utf8"

	"github.com/raysh454/yobu/internal/webclient"
)

var (
	// ErrMalformedJSON means the response declared application/json but the
	// body failed JSON parsing.
	ErrMalformedJSON = errors.New("malformed json body")

	// ErrBinaryBody means the body is not valid UTF-8 text.
	ErrBinaryBody = errors.New("body is not valid utf-8 text")
)

const jsonIndent = "  "

// Render writes resp to w. Header names are sorted: Go header maps carry no
// insertion order, and sorted output is the deterministic choice.
func Render(w io.Writer, resp *webclient.Response) error {
	if resp == nil {
		return errors.New("nil response")
	}

	if _, err := fmt.Fprintf(w, "%s %d\n", resp.Proto, resp.StatusCode); err != nil {
		return err
	}

	names := make([]string, 0, len(resp.Headers))
	for name := range resp.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range resp.Headers[name] {
			if _, err := fmt.Fprintf(w, "%s: %s\n", name, value); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	body, err := formatBody(resp)
	if err != nil {
		return err
	}
	if body == "" {
		return nil
	}
	if body[len(body)-1] != '\n' {
		body += "\n"
	}
	_, err = io.WriteString(w, body)
	return err
}

func formatBody(resp *webclient.Response) (string, error) {
	if len(resp.Body) == 0 {
		return "", nil
	}
	if !utf8.Valid(resp.Body) {
		return "", fmt.Errorf("decode body: %w", ErrBinaryBody)
	}

	if mediaType(resp.Headers.Get("Content-Type")) == "application/json" {
		var out bytes.Buffer
		if err := json.Indent(&out, resp.Body, "", jsonIndent); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedJSON, err)
		}
		return out.String(), nil
	}

	return string(resp.Body), nil
}

// mediaType extracts the bare MIME type from a Content-Type header value.
// An absent or unparseable value means "no MIME info", never an error.
func mediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mt
}
