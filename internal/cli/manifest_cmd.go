package cli

import (
	"flag"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"codecheck/internal/config"
	"codecheck/internal/manifest"
	"codecheck/internal/spec"
)

// runManifest builds the handler for the manifest command. It inspects the
// manifest against the output directory: resolved sizes, declared-size
// mismatches, missing files, and totals.
func runManifest(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to codecheck.yml (default: search upward from CWD)")
		fullPaths := flags.Bool("full-paths", false, "Show full relative paths instead of base names")
		collect := flags.String("collect", "", "Copy manifest files from this directory into the output directory")
		flatten := flags.Bool("flatten", false, "With --collect, drop directory structure at the destination")
		overwrite := flags.Bool("overwrite", true, "With --collect, replace files already at the destination")
		dryRun := flags.Bool("dry-run", false, "With --collect, report what would be copied without writing")
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
			fmt.Fprintf(stderr, "Manifest inspection failed: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Manifest inspection failed:\n%v\n", err)
			return ExitError
		}
		root := config.OutputsDir(config.BaseDirFromConfigPath(resolved))
		noColor := !isTerminal(stdout)

		if *collect != "" {
			copied, err := manifest.Copy(cfg.Manifest, *collect, root, manifest.CopyOptions{
				Flatten:   *flatten,
				Overwrite: *overwrite,
				DryRun:    *dryRun,
			})
			if err != nil {
				fmt.Fprintf(stderr, "Collecting manifest files failed: %v\n", err)
				return ExitError
			}
			verb := "copied"
			if *dryRun {
				verb = "would copy"
			}
			total := int64(0)
			written := 0
			for _, c := range copied {
				if c.Skipped {
					fmt.Fprintf(stdout, "%s %s (exists)\n",
						stylize("skipped", warnStyle, noColor), c.Destination)
					continue
				}
				fmt.Fprintf(stdout, "%s %s -> %s (%d bytes)\n", verb, c.Source, c.Destination, c.Size)
				total += c.Size
				written++
			}
			fmt.Fprintf(stdout, "\n%d file(s) %s, %d bytes\n", written, verb, total)
			return ExitOK
		}

		missing := manifest.Missing(cfg.Manifest, root)
		missingSet := make(map[string]struct{}, len(missing))
		for _, file := range missing {
			missingSet[file] = struct{}{}
		}

		for _, entry := range cfg.Manifest {
			name := entry.File
			if !*fullPaths {
				name = path.Base(name)
			}
			if _, gone := missingSet[entry.File]; gone {
				fmt.Fprintf(stdout, "%-40s %s\n", name, stylize("missing", errorStyle, noColor))
				continue
			}
			size := int64(0)
			if entry.Size != nil {
				size = *entry.Size
			} else if sized, err := manifest.Resolve([]spec.ManifestEntry{entry}, root); err == nil {
				size = sized[0].Size
			}
			fmt.Fprintf(stdout, "%-40s %d\n", name, size)
		}

		mismatches := manifest.CompareSizes(cfg.Manifest, root)
		for _, m := range mismatches {
			fmt.Fprintf(stdout, "%s declared %d bytes but has %d\n",
				stylize(m.File, warnStyle, noColor), m.Declared, m.Actual)
		}

		summary := manifest.Summary(cfg.Manifest, root)
		exts := make([]string, 0, len(summary.ByExtension))
		for ext := range summary.ByExtension {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		parts := make([]string, 0, len(exts))
		for _, ext := range exts {
			parts = append(parts, fmt.Sprintf("%s: %d", ext, summary.ByExtension[ext]))
		}
		fmt.Fprintf(stdout, "\n%d files, %d bytes on disk (%s)\n",
			summary.Files, summary.TotalBytes, strings.Join(parts, ", "))

		if len(missing) > 0 {
			fmt.Fprintf(stderr, "%d manifest file(s) missing from %s\n", len(missing), root)
			return ExitError
		}
		if len(mismatches) > 0 {
			return ExitError
		}
		return ExitOK
	}
}
