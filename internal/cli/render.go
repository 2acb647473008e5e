package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"codecheck/internal/config"
	"codecheck/internal/report"
	"codecheck/internal/stats"
)

const (
	markdownFileName = "certificate.md"
	figuresFileName  = "figures.tex"
)

// runRender builds the handler for the render command.
func runRender(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to codecheck.yml (default: search upward from CWD)")
		outputDir := flags.String("output", "", "Directory for the rendered documents (default: alongside the config)")
		toStdout := flags.Bool("stdout", false, "Print the Markdown document instead of writing files")
		header := flags.String("header", "", "Whether CSV files have a header row: true|false (default: auto-detect)")
		delimiter := flags.String("delimiter", "", "CSV field delimiter (default: auto-detect)")
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

		readOpts, err := parseReadOptions(*header, *delimiter)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Render failed:\n%v\n", err)
			return ExitError
		}

		baseDir := config.BaseDirFromConfigPath(resolved)
		builder := report.New(cfg, config.OutputsDir(baseDir))
		markdown, latex, err := builder.Certificate(context.Background(), readOpts)
		if err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}

		if *toStdout {
			fmt.Fprint(stdout, markdown)
			return ExitOK
		}

		dir := *outputDir
		if dir == "" {
			dir = baseDir
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}
		markdownPath := filepath.Join(dir, markdownFileName)
		if err := os.WriteFile(markdownPath, []byte(markdown), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write certificate: %v\n", err)
			return ExitError
		}
		figuresPath := filepath.Join(dir, figuresFileName)
		if err := os.WriteFile(figuresPath, []byte(latex), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write figures: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Certificate written to %s\n", markdownPath)
		fmt.Fprintf(stdout, "Figure directives written to %s\n", figuresPath)
		return ExitOK
	}
}

// parseReadOptions turns the render flags into explicit CSV read options.
func parseReadOptions(header, delimiter string) (stats.ReadOptions, error) {
	opts := stats.ReadOptions{Delimiter: delimiter}
	switch strings.ToLower(strings.TrimSpace(header)) {
	case "":
	case "true":
		value := true
		opts.Header = &value
	case "false":
		value := false
		opts.Header = &value
	default:
		return stats.ReadOptions{}, fmt.Errorf("invalid --header %q (expected true|false)", header)
	}
	return opts, nil
}
