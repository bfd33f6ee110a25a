package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/example/stealthprobe/internal/config"
)

func newInitCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Validate the execution environment and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.ReportFile == "" {
				if err := ensureOutputDir(cfg.OutputDir); err != nil {
					return err
				}
			}

			if runtime.GOOS != "windows" {
				fmt.Fprintln(cmd.OutOrStdout(), "Warning: window, injection, and debugger probes report clean results on non-windows hosts.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Environment looks good. Reports will be stored in %s\n", cfg.OutputDir)
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}
