// Command yobu is a minimal httpie-style HTTP client.
//
// Usage:
//
//	yobu get <url>
//	yobu post <url> [key=value ...]
//
// get issues a GET and pretty-prints the response. post serializes the
// key=value pairs into a JSON object and POSTs it. Exit codes: 0 when a
// response was rendered (any HTTP status), 2 on argument errors, 1 on
// network or rendering failures.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/raysh454/yobu/internal/app"
	"github.com/raysh454/yobu/internal/cli"
	"github.com/raysh454/yobu/internal/logging"
	"github.com/raysh454/yobu/internal/webclient"
)

func main() {
	cmd, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "yobu: %v\n\n%s", err, cli.Usage())
		os.Exit(2)
	}

	logger := logging.NewStderrLogger("yobu")
	cfg := app.DefaultConfig()

	client, err := webclient.NewWebClient(cfg.WebClientCfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "yobu: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	orch := app.NewOrchestrator(cfg, client, logger)
	if err := orch.Run(ctx, cmd); err != nil {
		fmt.Fprintf(os.Stderr, "yobu: %v\n", err)
		os.Exit(1)
	}
}
