package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/raysh454/yobu/internal/cli"
	"github.com/raysh454/yobu/internal/logging"
	"github.com/raysh454/yobu/internal/render"
	"github.com/raysh454/yobu/internal/webclient"
)

// Orchestrator ties config, webclient and logger together and drives the
// parse → dispatch → render pipeline for one command.
type Orchestrator struct {
	cfg    *Config
	client webclient.WebClient
	logger logging.Logger
}

func NewOrchestrator(cfg *Config, client webclient.WebClient, logger logging.Logger) *Orchestrator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Orchestrator{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

// Dispatch issues the HTTP request described by cmd and returns the raw
// response. Status codes are not inspected: a 404 or 500 is a completed
// dispatch, only transport-level failures come back as errors. One attempt,
// no retries.
func (o *Orchestrator) Dispatch(ctx context.Context, cmd *cli.Command) (*webclient.Response, error) {
	if cmd == nil {
		return nil, fmt.Errorf("nil command")
	}

	requestID := uuid.NewString()
	log := o.logger.With(logging.Field{Key: "request_id", Value: requestID})

	req := &webclient.Request{
		Method: string(cmd.Method),
		URL:    cmd.URL,
	}

	if cmd.Method == cli.MethodPost {
		body, err := encodeBody(cmd.Pairs)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		req.Body = body
		req.Headers = http.Header{}
		req.Headers.Set("Content-Type", "application/json")
	}

	log.Debug("dispatching request",
		logging.Field{Key: "method", Value: req.Method},
		logging.Field{Key: "url", Value: req.URL},
		logging.Field{Key: "body_bytes", Value: len(req.Body)})

	resp, err := o.client.Do(ctx, req)
	if err != nil {
		log.Warn("request failed",
			logging.Field{Key: "method", Value: req.Method},
			logging.Field{Key: "url", Value: req.URL},
			logging.Field{Key: "error", Value: err.Error()})
		return nil, err
	}

	log.Debug("request complete",
		logging.Field{Key: "status", Value: resp.StatusCode},
		logging.Field{Key: "body_bytes", Value: len(resp.Body)})

	return resp, nil
}

// Run dispatches cmd and renders the response to cfg.Out. Every error is
// passed through untouched; main is the only place that turns errors into
// exit codes.
func (o *Orchestrator) Run(ctx context.Context, cmd *cli.Command) error {
	resp, err := o.Dispatch(ctx, cmd)
	if err != nil {
		return err
	}
	return render.Render(o.cfg.Out, resp)
}

// encodeBody folds the pairs into a JSON object. The map makes keys unique;
// later duplicates win.
func encodeBody(pairs []cli.KvPair) ([]byte, error) {
	body := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		body[pair.Key] = pair.Value
	}
	return json.Marshal(body)
}
