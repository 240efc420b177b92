package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/walles/colorbrewer/twin"
)

// Pass nil colors for unstyled output
func heading(text string, colors *twin.ColorCount) string {
	if colors == nil {
		return text
	}

	style := twin.StyleDefault.WithAttr(twin.AttrItalic)
	prefix := style.RenderUpdateFrom(twin.StyleDefault, *colors)
	suffix := twin.StyleDefault.RenderUpdateFrom(style, *colors)
	return prefix + text + suffix
}

// If the environment variable is set, render it as APA=bepa indented two
// spaces, plus a newline at the end. Otherwise, return an empty string.
func renderPlainEnvVar(envVarName string) string {
	value := os.Getenv(envVarName)
	if value == "" {
		return ""
	}

	return fmt.Sprintf("  %s=%s\n", envVarName, value)
}

func printUsage(output io.Writer, flagSet *flag.FlagSet, colors *twin.ColorCount) {
	// This controls where PrintDefaults() prints, see below
	flagSet.SetOutput(output)

	fmt.Fprintln(output, heading("Usage", colors))                                      //nolint:errcheck
	fmt.Fprintln(output, "  brew [options] <palette> [count]")                          //nolint:errcheck
	fmt.Fprintln(output, "  brew [options] --list")                                     //nolint:errcheck
	fmt.Fprintln(output, "  brew [options] --find '#rrggbb'")                           //nolint:errcheck
	fmt.Fprintln(output)                                                                //nolint:errcheck
	fmt.Fprintln(output, "Prints ColorBrewer color ramps, <http://colorbrewer2.org/>.") //nolint:errcheck
	fmt.Fprintln(output, "Without a count, all ramps of the palette are printed.")      //nolint:errcheck
	fmt.Fprintln(output)                                                                //nolint:errcheck

	fmt.Fprintln(output, heading("Environment", colors)) //nolint:errcheck
	brewEnv := os.Getenv("BREW")
	if len(brewEnv) == 0 {
		fmt.Fprintln(output, "  Additional options are read from the BREW environment variable if set.") //nolint:errcheck
		fmt.Fprintln(output, "  But currently, the BREW environment variable is not set.")               //nolint:errcheck
	} else {
		fmt.Fprintln(output, "  Additional options are read from the BREW environment variable.") //nolint:errcheck
		fmt.Fprintf(output, "  Current setting: BREW=\"%s\"\n", brewEnv)                          //nolint:errcheck
	}

	envSection := ""
	envSection += renderPlainEnvVar("TERM")
	envSection += renderPlainEnvVar("COLORTERM")
	if envSection != "" {
		fmt.Fprintln(output) //nolint:errcheck

		// Not Println since the section already ends with a newline
		fmt.Fprint(output, envSection) //nolint:errcheck
	}

	fmt.Fprintln(output)                             //nolint:errcheck
	fmt.Fprintln(output, heading("Options", colors)) //nolint:errcheck

	flagSet.PrintDefaults()
}
