package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"codecheck/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to codecheck.yml (default: search upward from CWD)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			return ExitError
		}

		if _, err := config.Load(resolved); err != nil {
			noColor := !isTerminal(stderr)
			var verr *config.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(stderr, "%s has %d issue(s):\n", resolved, len(verr.Issues))
				for _, issue := range verr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n",
						stylize(issue.Field, errorStyle, noColor), issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Validation failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintln(stdout, stylize("Config OK", okStyle, !isTerminal(stdout)))
		return ExitOK
	}
}
