package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/stealthprobe/internal/config"
)

// runtimeFlagSet tracks shared audit flags before they are converted into config overrides.
type runtimeFlagSet struct {
	target      string
	windowTitle string
	outputDir   string
	reportFile  string
	historyFile string
	ndjson      bool
}

func bindRuntimeFlags(cmd *cobra.Command, flags *runtimeFlagSet) {
	cmd.Flags().StringVar(&flags.target, "target", "", "Process-name substring to audit (overrides config)")
	cmd.Flags().StringVar(&flags.windowTitle, "window-title", "", "Optional window-title substring filter")
	cmd.Flags().StringVar(&flags.outputDir, "output-dir", "", "Directory for report artifacts")
	cmd.Flags().StringVar(&flags.reportFile, "report-file", "", "Explicit report path (overrides the timestamped default)")
	cmd.Flags().StringVar(&flags.historyFile, "history-file", "", "Optional sqlite file recording run summaries")
	cmd.Flags().BoolVar(&flags.ndjson, "ndjson", false, "Emit NDJSON events instead of human-readable output")
}

func (f runtimeFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	if cmd.Flags().Changed("target") {
		ov.Target = f.target
	}

	if cmd.Flags().Changed("window-title") {
		ov.WindowTitle = f.windowTitle
	}

	if cmd.Flags().Changed("output-dir") {
		ov.OutputDir = f.outputDir
	}

	if cmd.Flags().Changed("report-file") {
		ov.ReportFile = f.reportFile
	}

	if cmd.Flags().Changed("history-file") {
		ov.HistoryFile = f.historyFile
	}

	if cmd.Flags().Changed("ndjson") {
		ov.NDJSON = &f.ndjson
	}

	return ov
}
