package webclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/raysh454/yobu/internal/logging"
)

// go-resty backed implementation of WebClient. Default headers are carried at
// the client level; resty lets request headers win over client headers, which
// matches the "defaults never override" contract.
type RestyClient struct {
	cfg    Config
	client *resty.Client
	logger logging.Logger
}

func NewRestyClient(cfg Config, logger logging.Logger) (*RestyClient, error) {
	componentLogger := logger.With(logging.Field{Key: "backend", Value: "resty"})

	client := resty.New()
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	for k, vs := range cfg.DefaultHeaders {
		for _, v := range vs {
			client.SetHeader(k, v)
		}
	}

	componentLogger.Info("created resty webclient",
		logging.Field{Key: "timeout", Value: cfg.Timeout.String()})

	return &RestyClient{
		cfg:    cfg,
		client: client,
		logger: componentLogger,
	}, nil
}

func (rc *RestyClient) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	method := strings.ToUpper(req.Method)

	rc.logger.Debug("sending http request",
		logging.Field{Key: "method", Value: method},
		logging.Field{Key: "url", Value: req.URL})

	r := rc.client.R().SetContext(ctx)
	if req.Headers != nil {
		r.SetHeaderMultiValues(req.Headers)
	}
	if len(req.Body) > 0 {
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(method, req.URL)
	if err != nil {
		rc.logger.Warn("http request failed",
			logging.Field{Key: "method", Value: method},
			logging.Field{Key: "url", Value: req.URL},
			logging.Field{Key: "error", Value: err.Error()})
		return nil, fmt.Errorf("resty do: %w", err)
	}

	return &Response{
		Request:    req,
		Proto:      resp.Proto(),
		StatusCode: resp.StatusCode(),
		Headers:    resp.Header(),
		Body:       resp.Body(),
		FetchedAt:  resp.ReceivedAt(),
	}, nil
}

func (rc *RestyClient) Close() error {
	rc.logger.Info("closing resty webclient")
	rc.client.GetClient().CloseIdleConnections()
	return nil
}
