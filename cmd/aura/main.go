// Command aura is the AuraScript interpreter CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"nickandperla.net/aurascript/internal/config"
	"nickandperla.net/aurascript/internal/console"
	"nickandperla.net/aurascript/pkg/aura"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errUsage marks command-line mistakes; run exits with status 2 for them.
var errUsage = errors.New("usage")

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("aura", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		evalStr    = fs.String("e", "", "Run AuraScript source string")
		file       = fs.String("f", "", "Run AuraScript file (- for stdin)")
		configPath = fs.String("config", "", "YAML provider configuration file")
		dbPath     = fs.String("db", "aura.db", "SQLite generation journal path (empty to disable)")
		verbose    = fs.Bool("v", false, "Trace each statement before it runs")
		noColor    = fs.Bool("no-color", false, "Disable colored output")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: aura [flags] [help | config | history [-n N] | prompt <provider>]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *noColor {
		console.SetColor(false)
	}
	con := console.New(stdout, stderr)
	con.Verbose = *verbose

	err := dispatch(fs, con, stdin, options{
		evalStr:    *evalStr,
		file:       *file,
		configPath: *configPath,
		dbPath:     *dbPath,
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fs.Usage()
		return 2
	default:
		con.Error(err)
		return 1
	}
}

type options struct {
	evalStr    string
	file       string
	configPath string
	dbPath     string
}

func dispatch(fs *flag.FlagSet, con *console.Console, stdin io.Reader, o options) error {
	switch fs.Arg(0) {
	case "help":
		printHelp(con.Out)
		return nil

	case "config":
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		return cfg.Redacted().Encode(con.Out)

	case "history":
		hfs := flag.NewFlagSet("history", flag.ContinueOnError)
		hfs.SetOutput(con.Err)
		limit := hfs.Int("n", 10, "Number of entries to show (0 for all)")
		if err := hfs.Parse(fs.Args()[1:]); err != nil {
			return errUsage
		}
		if o.dbPath == "" {
			return fmt.Errorf("history needs a journal database (-db)")
		}
		rt, err := aura.New(aura.WithSQLiteStore(o.dbPath))
		if err != nil {
			return err
		}
		defer rt.Close()
		return printHistory(rt, *limit, con)

	case "prompt":
		if fs.NArg() != 2 {
			return errUsage
		}
		rt, err := newRuntime(con, o)
		if err != nil {
			return err
		}
		defer rt.Close()
		return runChat(rt, fs.Arg(1), stdin, con, isTerminal(stdin))

	case "":
		rt, err := newRuntime(con, o)
		if err != nil {
			return err
		}
		defer rt.Close()
		return runScripts(rt, stdin, o)

	default:
		con.Warnf("unknown command %q", fs.Arg(0))
		return errUsage
	}
}

func newRuntime(con *console.Console, o options) (*aura.Runtime, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	opts := []aura.Option{
		aura.WithConfig(cfg),
		aura.WithOutput(con.Out),
		aura.WithLogf(con.Tracef),
	}
	if o.dbPath != "" {
		opts = append(opts, aura.WithSQLiteStore(o.dbPath))
	}
	return aura.New(opts...)
}

// runScripts runs -f then -e; with neither it runs the default script.
func runScripts(rt *aura.Runtime, stdin io.Reader, o options) error {
	if o.file == "" && o.evalStr == "" {
		return rt.RunDefault()
	}

	if o.file == "-" {
		if err := rt.RunReader(stdin); err != nil {
			return err
		}
	} else if o.file != "" {
		if err := rt.RunFile(o.file); err != nil {
			return err
		}
	}

	if o.evalStr != "" {
		return rt.Run(o.evalStr)
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
