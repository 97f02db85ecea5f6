// Package main provides the CLI entry point for insertdox, a tool that
// inserts Doxygen comment blocks into C source files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/paul-chambers/insertdox/annotate"
	"github.com/paul-chambers/insertdox/log"
	"github.com/paul-chambers/insertdox/profile"
	"github.com/paul-chambers/insertdox/version"
)

func main() {
	cfg := annotate.NewConfig()
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var configPath string

	rootCmd := &cobra.Command{
		Use:   "insertdox [flags] [file ...]",
		Short: "Insert Doxygen comment blocks into C source",
		Long: `insertdox reads C source text and emits the same text with synthesized
documentation-comment blocks in front of every function definition, plus a
normalized file-header comment. It is a best-effort heuristic annotator: no
full C grammar, no macro expansion, no type checking.

Files given as arguments are edited in place; the original is kept as
<file>.bak. With no arguments, stdin is processed to stdout.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, logCfg, profCfg, configPath, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.Flags())
	profCfg.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&configPath, "config", "",
		"YAML configuration file")

	rootCmd.AddCommand(newSchemaCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(
	cmd *cobra.Command,
	cfg *annotate.Config,
	logCfg *log.Config,
	profCfg *profile.Config,
	configPath string,
	args []string,
) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	if configPath != "" {
		fc, loadErr := annotate.LoadFileConfig(configPath)
		if loadErr != nil {
			return loadErr
		}

		cfg.ApplyFile(fc, cmd.Flags())
	}

	a, err := cfg.NewAnnotator(annotate.WithLogger(logger))
	if err != nil {
		return err
	}

	prof := profCfg.NewProfiler()

	err = prof.Start()
	if err != nil {
		return err
	}

	runErr := annotateAll(a, args)

	err = prof.Stop()
	if runErr != nil {
		return runErr
	}

	return err
}

func annotateAll(a *annotate.Annotator, args []string) error {
	if len(args) == 0 {
		return a.Annotate(os.Stdout, os.Stdin, "")
	}

	failed := 0

	for _, path := range args {
		err := processPath(a, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
	}

	return nil
}

// processPath annotates one file in place: output goes to <path>.tmp, and
// only after clean processing is the original renamed to <path>.bak and
// the temporary renamed over the original.
func processPath(a *annotate.Annotator, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	tmpPath := path + ".tmp"

	out, err := os.Create(tmpPath)
	if err != nil {
		return err
	}

	err = a.Annotate(out, in, filepath.Base(path))

	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		os.Remove(tmpPath)

		return err
	}

	bakPath := path + ".bak"

	err = os.Rename(path, bakPath)
	if err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("rename to %s: %w", bakPath, err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		return fmt.Errorf("rename %s back: %w", tmpPath, err)
	}

	return nil
}
