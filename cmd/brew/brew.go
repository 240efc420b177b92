package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/walles/colorbrewer/internal"
	"github.com/walles/colorbrewer/pkg/colorbrewer"
	"github.com/walles/colorbrewer/twin"
	"golang.org/x/term"
)

var versionString = "Should be set when building: -ldflags \"-X main.versionString=1.2.3\""

type options struct {
	palette colorbrewer.Palette

	// Without a count, all ramps of the palette are printed
	count    int
	hasCount bool

	format internal.Format
	colors twin.ColorCount

	list bool

	// Set by --find
	find *colorbrewer.Color

	printVersion bool
}

type flagValues struct {
	printVersion *bool
	debug        *bool
	trace        *bool
	list         *bool
	find         *string
	format       *string
	colors       *string
	config       *string
}

func newFlagSet() (*flag.FlagSet, *flagValues) {
	flagSet := flag.NewFlagSet("", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	return flagSet, &flagValues{
		printVersion: flagSet.Bool("version", false, "Prints the brew version number"),
		debug:        flagSet.Bool("debug", false, "Print debug logs after exiting"),
		trace:        flagSet.Bool("trace", false, "Print trace logs after exiting"),
		list:         flagSet.Bool("list", false, "List all palettes and their available counts"),
		find:         flagSet.String("find", "", "List all ramps containing this `#rrggbb` color"),
		format: flagSet.String("format", "",
			"Output format: swatch, hex or rgb. Default is swatch on terminals, hex otherwise"),
		colors: flagSet.String("colors", "auto", "Swatch palette size: 8, 16, 256, 16M or auto"),
		config: flagSet.String("config", "", "Read BREW_FORMAT and BREW_COLORS settings from this `file`"),
	}
}

// Combine options from the config file, the BREW environment variable and the
// command line, in increasing priority order.
func parseFlags(args []string, getenv func(string) string) (*flag.FlagSet, *flagValues, error) {
	flags := args
	brewEnv := strings.TrimSpace(getenv("BREW"))
	if len(brewEnv) > 0 {
		flags = append(strings.Fields(brewEnv), flags...)
	}

	flagSet, values := newFlagSet()
	err := flagSet.Parse(flags)
	if err != nil {
		return flagSet, values, err
	}

	// Before reading the config file, so that its logs are visible
	setLogLevel(values)

	if *values.config == "" {
		return flagSet, values, nil
	}

	configFlags, err := internal.ConfigFileArgs(*values.config)
	if err != nil {
		return flagSet, values, err
	}

	// Re-parse with the config file settings first so the others override them
	flagSet, values = newFlagSet()
	err = flagSet.Parse(append(configFlags, flags...))
	return flagSet, values, err
}

func setLogLevel(values *flagValues) {
	log.SetLevel(log.InfoLevel)
	if *values.trace {
		log.SetLevel(log.TraceLevel)
	} else if *values.debug {
		log.SetLevel(log.DebugLevel)
	}
}

// parseOptions turns command line arguments into options. The flag set is
// returned for printing usage, also on errors.
func parseOptions(args []string, getenv func(string) string, stdoutIsTerminal bool) (*options, *flag.FlagSet, error) {
	flagSet, values, err := parseFlags(args, getenv)
	if err != nil {
		return nil, flagSet, err
	}

	result := options{
		list:         *values.list,
		printVersion: *values.printVersion,
	}
	if result.printVersion {
		return &result, flagSet, nil
	}

	result.colors, err = internal.ParseColorCount(*values.colors, getenv)
	if err != nil {
		return nil, flagSet, err
	}

	if *values.format == "" {
		result.format = internal.FormatHex
		if stdoutIsTerminal {
			result.format = internal.FormatSwatch
		}
		log.Debug("No format requested, picked ", result.format)
	} else {
		result.format, err = internal.ParseFormat(*values.format)
		if err != nil {
			return nil, flagSet, err
		}
	}

	if *values.find != "" {
		color, err := colorbrewer.ParseHexColor(*values.find)
		if err != nil {
			return nil, flagSet, err
		}
		result.find = &color
	}

	if result.list && result.find != nil {
		return nil, flagSet, fmt.Errorf("--list and --find can't be combined")
	}

	if result.list || result.find != nil {
		if flagSet.NArg() > 0 {
			return nil, flagSet, fmt.Errorf("expected no palette with --list or --find, got: %v", flagSet.Args())
		}
		return &result, flagSet, nil
	}

	if flagSet.NArg() < 1 || flagSet.NArg() > 2 {
		return nil, flagSet, fmt.Errorf("expected a palette name and optionally a count, got: %v", flagSet.Args())
	}

	result.palette, err = colorbrewer.ParsePalette(flagSet.Arg(0))
	if err != nil {
		return nil, flagSet, fmt.Errorf("palette \"%s\": %w, try --list", flagSet.Arg(0), err)
	}

	if flagSet.NArg() == 2 {
		result.count, err = strconv.Atoi(flagSet.Arg(1))
		if err != nil {
			return nil, flagSet, fmt.Errorf("count \"%s\" is not a number", flagSet.Arg(1))
		}
		result.hasCount = true
	}

	return &result, flagSet, nil
}

func run(opts *options, stdout io.Writer) error {
	var output string
	switch {
	case opts.list:
		output = internal.RenderListing(opts.format, opts.colors)

	case opts.find != nil:
		matches := colorbrewer.Find(*opts.find)
		log.Debug("Found ", len(matches), " ramps containing ", *opts.find)
		if len(matches) == 0 {
			return fmt.Errorf("%s is not in any ramp", *opts.find)
		}
		output = internal.RenderMatches(*opts.find, matches, opts.format, opts.colors)

	case !opts.hasCount:
		output = internal.RenderPalette(opts.palette, opts.format, opts.colors)

	default:
		ramp, ok := colorbrewer.ColorRamp(opts.palette, opts.count)
		if !ok {
			return fmt.Errorf("%s has no %d color ramp, available counts are %s",
				opts.palette,
				opts.count,
				internal.FormatCounts(opts.palette.Counts()))
		}
		output = internal.RenderRamp(ramp, opts.format, opts.colors)
	}

	_, err := io.WriteString(stdout, output)
	return err
}

// printProblemsHeader prints bug reporting information to stderr
func printProblemsHeader() {
	fmt.Fprintln(os.Stderr, "Please post the following report at <https://github.com/walles/colorbrewer/issues>.") //nolint:errcheck
	fmt.Fprintln(os.Stderr)                                                                                        //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Version:", versionString)                                                             //nolint:errcheck
	fmt.Fprintln(os.Stderr, "TERM   :", os.Getenv("TERM"))                                                         //nolint:errcheck
	fmt.Fprintln(os.Stderr)                                                                                        //nolint:errcheck
	fmt.Fprintln(os.Stderr, "GOOS    :", runtime.GOOS)                                                             //nolint:errcheck
	fmt.Fprintln(os.Stderr, "GOARCH  :", runtime.GOARCH)                                                           //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Compiler:", runtime.Compiler)                                                         //nolint:errcheck
	fmt.Fprintln(os.Stderr)                                                                                        //nolint:errcheck
}

func main() {
	defer func() {
		err := recover()
		if err == nil {
			return
		}

		printProblemsHeader()
		panic(err)
	}()

	logs := internal.StartLogCollection()
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
	})

	stdoutIsTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	var usageColors *twin.ColorCount
	if stdoutIsTerminal {
		colors := internal.DetectColorCount(os.Getenv)
		usageColors = &colors
	}

	opts, flagSet, err := parseOptions(os.Args[1:], os.Getenv, stdoutIsTerminal)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(os.Stdout, flagSet, usageColors)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err) //nolint:errcheck
		fmt.Fprintln(os.Stderr)                //nolint:errcheck
		printUsage(os.Stderr, flagSet, nil)
		fmt.Fprint(os.Stderr, logs.String()) //nolint:errcheck
		os.Exit(1)
	}

	if opts.printVersion {
		fmt.Println(versionString)
		os.Exit(0)
	}

	exitCode := 0
	err = run(opts, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err) //nolint:errcheck
		exitCode = 1
	}

	if len(logs.String()) > 0 {
		fmt.Fprint(os.Stderr, logs.String()) //nolint:errcheck
	}
	os.Exit(exitCode)
}
