package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Makepad-fr/connmatch/internal/connstr"
	"github.com/Makepad-fr/connmatch/internal/logging"
	"github.com/Makepad-fr/connmatch/internal/model"
	"github.com/Makepad-fr/connmatch/internal/report"
	"github.com/Makepad-fr/connmatch/internal/tui"
	"github.com/Makepad-fr/connmatch/internal/ui"
)

// Exit codes
const (
	ExitOK       = 0
	ExitNegative = 1 // invalid, mismatch, or a runtime error
	ExitUsage    = 2
)

// stdinArg stands for one line read from stdin.
const stdinArg = "-"

// UIRunner starts the interactive comparator.
type UIRunner func(ctx context.Context, opt tui.Options) (model.Comparison, error)

// Options tune output behavior from root flags.
type Options struct {
	JSON        bool // machine readable output
	Reveal      bool // print secrets instead of masking them
	Interactive bool // stdin and stdout are terminals; no subcommand means ui

	Context context.Context
	Logger  *slog.Logger

	Stdin          io.Reader
	Stdout, Stderr io.Writer

	RunUI UIRunner
}

func (o *Options) defaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.RunUI == nil {
		o.RunUI = tui.Run
	}
}

type runner struct {
	opt   Options
	stdin *bufio.Reader
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 negative, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	r := &runner{opt: opt, stdin: bufio.NewReader(opt.Stdin)}

	if len(args) == 0 {
		if opt.Interactive {
			return r.doUI(nil)
		}
		PrintHelp(opt.Stderr)
		return ExitUsage
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return ExitOK

	case "validate":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: connmatch validate <string|->")
			return ExitUsage
		}
		return r.doValidate(a[0])

	case "compare":
		if len(a) != 2 {
			ui.Fail(opt.Stderr, "usage: connmatch compare <left|-> <right|->")
			return ExitUsage
		}
		return r.doCompare(a[0], a[1])

	case "sanitize":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: connmatch sanitize <string|->")
			return ExitUsage
		}
		return r.doSanitize(a[0])

	case "ui":
		if len(a) > 2 {
			ui.Fail(opt.Stderr, "usage: connmatch ui [left] [right]")
			return ExitUsage
		}
		return r.doUI(a)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return ExitUsage
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `connmatch - check and compare database connection strings

Usage:
  connmatch [flags] <subcommand> [args]

Subcommands:
  validate <string>        Exit 0 when the string looks like a connection string
  compare <left> <right>   Exit 0 when both are valid and identical (after trimming)
  sanitize <string>        Print the string with passwords, tokens and keys masked
  ui [left] [right]        Interactive comparator (default on a terminal)

Use - as an argument to read that value from one line of stdin.

Flags:
  -theme classic|neon|mono   Output theme (env CONNMATCH_THEME)
  -no-color                  Disable colour (env NO_COLOR)
  -color                     Force colour when piped (env CLICOLOR_FORCE); -no-color wins
  -json                      Print a JSON report
  -reveal                    Do not mask secrets in output
  -verbose                   Debug logging on stderr (env CONNMATCH_VERBOSE)

Examples:
  connmatch validate "Server=localhost;Database=test"
  connmatch compare "$PROD_DSN" "$STAGING_DSN"
  pbpaste | connmatch sanitize -
`)
}

// -------------- subcommand impls ----------------

func (r *runner) doValidate(arg string) int {
	value, err := r.resolve(arg)
	if err != nil {
		ui.Fail(r.opt.Stderr, err.Error())
		return ExitNegative
	}
	f := model.NewField(value)
	r.opt.Logger.Debug("validate",
		"input", connstr.Sanitize(value),
		"validity", f.Validity,
		"family", f.Family)

	if r.opt.JSON {
		if err := report.WriteField(r.opt.Stdout, f, r.opt.Reveal); err != nil {
			ui.Fail(r.opt.Stderr, err.Error())
			return ExitNegative
		}
	} else {
		switch f.Validity {
		case model.Valid:
			ui.OK(r.opt.Stdout, "valid ("+string(f.Family)+")")
		case model.Invalid:
			ui.Fail(r.opt.Stdout, "invalid")
		default:
			ui.Hint(r.opt.Stdout, "no input")
		}
		if value != "" {
			ui.Hint(r.opt.Stdout, ui.Display(value, r.opt.Reveal))
		}
	}
	if f.Validity != model.Valid {
		return ExitNegative
	}
	return ExitOK
}

func (r *runner) doCompare(leftArg, rightArg string) int {
	left, err := r.resolve(leftArg)
	if err != nil {
		ui.Fail(r.opt.Stderr, err.Error())
		return ExitNegative
	}
	right, err := r.resolve(rightArg)
	if err != nil {
		ui.Fail(r.opt.Stderr, err.Error())
		return ExitNegative
	}

	c := model.Evaluate(left, right)
	r.opt.Logger.Debug("compare",
		"left", connstr.Sanitize(left),
		"right", connstr.Sanitize(right),
		"state", c.State)

	if code := r.printComparison(c); code != ExitOK {
		return code
	}
	if c.State != model.StateMatch {
		return ExitNegative
	}
	return ExitOK
}

func (r *runner) doSanitize(arg string) int {
	value, err := r.resolve(arg)
	if err != nil {
		ui.Fail(r.opt.Stderr, err.Error())
		return ExitNegative
	}
	fmt.Fprintln(r.opt.Stdout, connstr.Sanitize(value))
	return ExitOK
}

func (r *runner) doUI(args []string) int {
	var prefill [2]string
	for i, arg := range args {
		value, err := r.resolve(arg)
		if err != nil {
			ui.Fail(r.opt.Stderr, err.Error())
			return ExitNegative
		}
		prefill[i] = value
	}
	topt := tui.Options{
		Logger:    r.opt.Logger,
		Reveal:    r.opt.Reveal,
		AltScreen: true,
		Left:      prefill[0],
		Right:     prefill[1],
	}

	c, err := r.opt.RunUI(r.opt.Context, topt)
	if err != nil {
		ui.Fail(r.opt.Stderr, err.Error())
		return ExitNegative
	}
	// the alt screen is gone once the program exits; leave the verdict behind
	if !c.Visible() {
		return ExitOK
	}
	return r.printComparison(c)
}

func (r *runner) printComparison(c model.Comparison) int {
	if r.opt.JSON {
		if err := report.Write(r.opt.Stdout, c, r.opt.Reveal); err != nil {
			ui.Fail(r.opt.Stderr, err.Error())
			return ExitNegative
		}
		return ExitOK
	}
	fmt.Fprintln(r.opt.Stdout, ui.Verdict(c, r.opt.Reveal))
	return ExitOK
}

// resolve returns arg itself, or the next stdin line when arg is "-".
func (r *runner) resolve(arg string) (string, error) {
	if arg != stdinArg {
		return arg, nil
	}
	line, err := r.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
