package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/example/stealthprobe/internal/config"
	"github.com/example/stealthprobe/internal/platform"
	"github.com/example/stealthprobe/internal/sysquery"
)

type doctorCheck struct {
	Name   string
	Status string // "ok", "fail", or "skip"
	Detail string
	Error  error
}

func newDoctorCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate probe prerequisites on this host",
		Long: `The doctor subcommand checks everything the probe catalogue depends on:
- Go runtime and operating system support
- system utilities used by the external-query probes (tasklist, wmic, powershell)
- display availability for the screen-capture probe
- configuration and output directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			checks := runDoctorChecks(&cfg)
			printDoctorReport(cmd, checks)

			for _, check := range checks {
				if check.Error != nil {
					return fmt.Errorf("doctor checks failed")
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nAll checks passed. Host is ready for a full audit.")
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}

func runDoctorChecks(cfg *config.RuntimeConfig) []doctorCheck {
	checks := []doctorCheck{
		{Name: "Go Runtime", Status: "ok", Detail: runtime.Version()},
		checkPlatformSupport(),
	}

	checks = append(checks, checkUtilities()...)
	checks = append(checks, checkDisplays())
	checks = append(checks, checkConfiguration(cfg))
	checks = append(checks, checkOutputDirectory(cfg.OutputDir))

	return checks
}

func checkPlatformSupport() doctorCheck {
	if runtime.GOOS == "windows" {
		return doctorCheck{
			Name:   "Platform",
			Status: "ok",
			Detail: platform.Describe(),
		}
	}
	return doctorCheck{
		Name:   "Platform",
		Status: "skip",
		Detail: fmt.Sprintf("%s: window and access probes report clean results", platform.Describe()),
	}
}

func checkUtilities() []doctorCheck {
	utilities := []string{"tasklist", "wmic", "powershell"}
	checks := make([]doctorCheck, 0, len(utilities))

	for _, binary := range utilities {
		check := doctorCheck{Name: fmt.Sprintf("Utility: %s", binary)}
		if err := sysquery.Available(binary); err != nil {
			// A missing utility only degrades the matching probe to a
			// clean "access restricted" result, so it is not fatal.
			check.Status = "skip"
			check.Detail = "not found on PATH"
		} else {
			check.Status = "ok"
			check.Detail = "available"
		}
		checks = append(checks, check)
	}

	return checks
}

func checkDisplays() doctorCheck {
	count := platform.DisplayCount()
	if count == 0 {
		return doctorCheck{
			Name:   "Displays",
			Status: "skip",
			Detail: "no active displays; screen-capture probe will report capture blocked",
		}
	}
	return doctorCheck{
		Name:   "Displays",
		Status: "ok",
		Detail: fmt.Sprintf("%d active", count),
	}
}

func checkConfiguration(cfg *config.RuntimeConfig) doctorCheck {
	if err := cfg.Validate(); err != nil {
		return doctorCheck{
			Name:   "Configuration",
			Status: "fail",
			Detail: "invalid configuration",
			Error:  err,
		}
	}

	detail := fmt.Sprintf("target=%q", cfg.Target)
	if cfg.WindowTitle != "" {
		detail += fmt.Sprintf(", window=%q", cfg.WindowTitle)
	}
	return doctorCheck{
		Name:   "Configuration",
		Status: "ok",
		Detail: detail,
	}
}

func checkOutputDirectory(outputDir string) doctorCheck {
	if err := ensureOutputDir(outputDir); err != nil {
		return doctorCheck{
			Name:   "Output Directory",
			Status: "fail",
			Detail: outputDir,
			Error:  err,
		}
	}

	return doctorCheck{
		Name:   "Output Directory",
		Status: "ok",
		Detail: outputDir,
	}
}

func printDoctorReport(cmd *cobra.Command, checks []doctorCheck) {
	fmt.Fprintln(cmd.OutOrStdout(), "Running environment diagnostics...")

	for _, check := range checks {
		fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-24s %s\n", check.Status, check.Name+":", check.Detail)
		if check.Error != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "     Error: %v\n", check.Error)
		}
	}
}
