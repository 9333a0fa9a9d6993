package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"quizconv/internal/config"
	"quizconv/internal/server"
)

// serveAPI is a test seam for running the HTTP server.
var serveAPI = server.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		specPath := flags.String("spec", "", "Path to config file (default: search for .quizconv/config.yml)")
		addr := flags.String("addr", "", "Address to listen on (overrides serve.addr)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		serveCfg, err := loadServeConfig(*specPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		if *addr != "" {
			serveCfg.Addr = *addr
		}

		cfg := server.Config{
			Addr:           serveCfg.Addr,
			AllowedOrigins: serveCfg.AllowedOrigins,
			MaxBodyBytes:   serveCfg.MaxBodyBytes,
			LogOutput:      stderr,
			NoColor:        !useColor(false, stderr),
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(stdout, "Serving quiz API at http://%s\n", cfg.Addr)
		if err := serveAPI(ctx, cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadServeConfig reads the serve section, falling back to defaults when no
// config file is found and none was requested.
func loadServeConfig(specPath string) (config.ServeConfig, error) {
	proj, err := loadProject(specPath)
	if err != nil {
		if strings.TrimSpace(specPath) == "" && errors.Is(err, config.ErrConfigNotFound) {
			var serve config.ServeConfig
			config.NormalizeServe(&serve)
			return serve, nil
		}
		return config.ServeConfig{}, err
	}
	return proj.Config.Serve, nil
}
