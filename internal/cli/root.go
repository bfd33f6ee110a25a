package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/stealthprobe/internal/config"
)

var version = "0.3.0"

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	loader := &config.Loader{ConfigPath: config.DefaultConfigPath}
	rootOpts := &rootOptions{}

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	rootCmd := &cobra.Command{
		Use:           "stealthprobe",
		Short:         "Audit how visible a running process is to common detection techniques",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	rootCmd.SetVersionTemplate("stealthprobe version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultConfigPath, "Path to stealthprobe.config.yml (optional)")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.Verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
		if rootOpts.Verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	}

	rootCmd.AddCommand(
		newAuditCmd(loader, log),
		newReportCmd(),
		newHistoryCmd(loader),
		newInitCmd(loader),
		newDoctorCmd(loader),
	)

	return rootCmd.Execute()
}

type rootOptions struct {
	ConfigPath string
	Verbose    bool
}
