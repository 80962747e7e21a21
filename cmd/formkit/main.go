// Command formkit assembles a multipart upload for an OpenAI style API and
// either prints it or sends it once.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/shuldan/formkit/pkg/cli"
	"github.com/shuldan/formkit/pkg/contracts"
	"github.com/shuldan/formkit/pkg/logger"
)

const program = "formkit"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	global := flag.NewFlagSet(program, flag.ContinueOnError)
	global.SetOutput(stderr)
	level := global.String("log-level", "info", "Log level: trace, debug, info, warn, error, critical")
	jsonLogs := global.Bool("log-json", false, "Write logs as JSON")
	if err := global.Parse(args); err != nil {
		return 2
	}

	log, err := newLogger(stderr, *level, *jsonLogs)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return 1
	}

	registry := cli.NewRegistry()
	app := cli.New(registry)
	for _, cmd := range []contracts.CliCommand{
		newSendCommand(log),
		newVerifyCommand(log),
		cli.NewHelpCommand(registry, program),
	} {
		if err := app.Register(cmd); err != nil {
			log.Critical("failed to register command", "error", err)
			return 1
		}
	}

	rest := global.Args()
	if len(rest) == 0 {
		rest = []string{"help"}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := app.Run(cli.NewContext(ctx, stdin, stdout, rest)); err != nil {
		log.Error("command failed", "error", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string, jsonLogs bool) (contracts.Logger, error) {
	opts := []logger.Option{
		logger.WithWriter(w),
		logger.WithLevel(logger.ParseLevel(level)),
		logger.WithRedactedKeys("api_key", "authorization"),
	}
	if jsonLogs {
		opts = append(opts, logger.WithJSON())
	} else {
		opts = append(opts, logger.WithColor())
	}
	return logger.NewLogger(opts...)
}
