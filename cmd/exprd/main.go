// Command exprd runs the expression engine as a standalone gRPC debug
// server, so a non-Go host (or a human with grpcurl) can exercise
// compile.Compile without embedding the Go module.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/styleexpr/exprlang/internal/config"
	"github.com/styleexpr/exprlang/internal/defaults"
	"github.com/styleexpr/exprlang/internal/rpcserver"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	addr := ""
	for i := 1; i < len(os.Args); i++ {
		if os.Args[i] == "-addr" || os.Args[i] == "--addr" {
			if i+1 < len(os.Args) {
				addr = os.Args[i+1]
			}
		}
	}

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if addr == "" {
		addr = cfg.RPC.Addr
	}

	server := rpcserver.NewServer(defaults.Options())

	done := make(chan error, 1)
	go func() { done <- server.Serve(addr) }()
	log.Printf("exprd listening on %s", addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			log.Fatalf("serve: %v", err)
		}
	case <-sig:
		log.Printf("shutting down")
		server.Stop()
	}
}
