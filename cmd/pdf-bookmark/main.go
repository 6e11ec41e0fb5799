package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), os.Stderr)

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Errors are ignored: maxprocs.Set only fails on an invalid GOMAXPROCS env,
// and the runtime default then applies.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// hasVerboseFlag scans raw arguments before any FlagSet exists.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}

// runMain dispatches the command line and returns the process exit code.
// Arguments starting with a dash select the bookmark command.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch {
	case cmd == "merge":
		err = runMerge(ctx, rest, env)
	case cmd == "unicode":
		err = runUnicode(rest, env)
	case cmd == "doctor":
		return runDoctorCmd(ctx, rest, env)
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "pdf-bookmark %s\n", Version)
		return ExitSuccess
	case cmd == "help":
		runHelp(rest, env)
		return ExitSuccess
	case strings.HasPrefix(cmd, "-"):
		err = runBookmark(ctx, args[1:], env)
	default:
		err = fmt.Errorf("%w: unknown command: %s", ErrUsage, cmd)
	}

	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	fmt.Fprintf(env.Stderr, "error: %v\n", err)
	code := exitCodeFor(err)
	if code == ExitUsage && errors.Is(err, ErrUsage) {
		fmt.Fprintln(env.Stderr, "Run 'pdf-bookmark help' for usage.")
	}
	return code
}
