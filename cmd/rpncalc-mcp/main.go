// Command rpncalc-mcp serves the calculator and calculator_history tools over
// the Model Context Protocol, on stdio by default or over streamable HTTP.
//
//	rpncalc-mcp                                # stdio
//	rpncalc-mcp -transport http -addr :8080    # http
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leofalp/rpncalc/core/rpn"
	"github.com/leofalp/rpncalc/internal/config"
	"github.com/leofalp/rpncalc/internal/mcpserver"
	"github.com/leofalp/rpncalc/providers/memory/inmemory"
	"github.com/leofalp/rpncalc/providers/observability"
	"github.com/leofalp/rpncalc/providers/observability/slogobs"
	"github.com/leofalp/rpncalc/providers/tool"
	"github.com/leofalp/rpncalc/providers/tool/calculator"
)

const (
	serverName    = "rpncalc"
	serverVersion = "0.1.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg.RegisterFlags(flag.CommandLine)
	cfg.RegisterServerFlags(flag.CommandLine)
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Println(serverName, serverVersion)
		return
	}

	observer := slogobs.New(cfg.ObserverOptions()...)

	tape := inmemory.New(inmemory.WithCapacity(cfg.HistorySize))
	catalog := tool.NewCatalogWithTools(
		calculator.NewCalculatorTool(rpn.WithObserver(observer), rpn.WithHistory(tape)),
		calculator.NewHistoryTool(tape),
	)

	srv, err := mcpserver.New(serverName, serverVersion, catalog, observer)
	if err != nil {
		observer.Error(context.Background(), "Failed to create MCP server", observability.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(ctx, cfg.Transport, cfg.Addr); err != nil {
		observer.Error(ctx, "MCP server stopped", observability.Error(err))
		stop()
		os.Exit(1)
	}
}
