// Command demoserver starts a local echo server for trying out yobu.
// Usage: go run ./cmd/demoserver [port]
// Default port: 9999
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/raysh454/yobu/internal/demoserver"
	"github.com/raysh454/yobu/internal/logging"
)

func main() {
	cfg := demoserver.DefaultConfig()

	// Optional: custom port from command line
	if len(os.Args) > 1 {
		port, err := strconv.Atoi(os.Args[1])
		if err != nil || port < 1 || port > 65535 {
			log.Fatalf("Invalid port: %s", os.Args[1])
		}
		cfg.Port = port
	}

	fmt.Println("===========================================")
	fmt.Println("   yobu demo server")
	fmt.Println("===========================================")
	fmt.Println()
	fmt.Println("Endpoints:")
	fmt.Printf("  GET  http://localhost:%d/get           echo request as JSON\n", cfg.Port)
	fmt.Printf("  POST http://localhost:%d/post          echo JSON body\n", cfg.Port)
	fmt.Printf("  GET  http://localhost:%d/headers       echo request headers\n", cfg.Port)
	fmt.Printf("  GET  http://localhost:%d/status/{code} answer with a status code\n", cfg.Port)
	fmt.Printf("  GET  http://localhost:%d/text          plain-text body\n", cfg.Port)
	fmt.Printf("  GET  http://localhost:%d/slow          answer after 2s\n", cfg.Port)
	fmt.Println()
	fmt.Printf("Try: yobu post http://localhost:%d/post name=yobu lang=go\n", cfg.Port)
	fmt.Println()

	logger := logging.NewStderrLogger("demoserver")
	logger.SetVerbose(true)

	server := demoserver.NewDemoServer(cfg, logger)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
