package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/Makepad-fr/connmatch/internal/cli"
	"github.com/Makepad-fr/connmatch/internal/config"
	"github.com/Makepad-fr/connmatch/internal/logging"
	"github.com/Makepad-fr/connmatch/internal/ui"
)

func main() {
	cfg := config.Load()

	// Root flags (apply to every subcommand); the environment supplies defaults.
	theme := flag.String("theme", cfg.Theme, "output theme: classic, neon or mono")
	noColor := flag.Bool("no-color", cfg.NoColor, "disable colour output")
	color := flag.Bool("color", cfg.ForceColor, "keep colour when output is not a terminal")
	asJSON := flag.Bool("json", false, "print a JSON report instead of a panel")
	reveal := flag.Bool("reveal", false, "show secrets instead of masking them")
	verbose := flag.Bool("verbose", cfg.Verbose, "debug logging on stderr")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ui.SetTheme(*theme)
	ui.SetColorForcing(*color, *noColor)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(os.Stderr, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := cli.Run(flag.Args(), cli.Options{
		JSON:        *asJSON,
		Reveal:      *reveal,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())),
		Context:     ctx,
		Logger:      logger,
	})
	if code == cli.ExitUsage {
		fmt.Fprintln(os.Stderr)
	}
	stop()
	os.Exit(code)
}
