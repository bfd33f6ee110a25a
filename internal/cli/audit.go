package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/stealthprobe/internal/config"
	"github.com/example/stealthprobe/internal/events"
	"github.com/example/stealthprobe/internal/history"
	"github.com/example/stealthprobe/internal/platform"
	"github.com/example/stealthprobe/internal/probe"
	"github.com/example/stealthprobe/internal/report"
	"github.com/example/stealthprobe/internal/target"
)

func newAuditCmd(loader *config.Loader, log *logrus.Logger) *cobra.Command {
	flags := &runtimeFlagSet{}

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Run the full detection-test catalogue against the target",
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

			return runAudit(cmd, cfg, log)
		},
	}

	bindRuntimeFlags(cmd, flags)

	return cmd
}

func runAudit(cmd *cobra.Command, cfg config.RuntimeConfig, log *logrus.Logger) error {
	started := time.Now().UTC()
	meta := report.Meta{
		TargetProcess: cfg.Target,
		TargetWindow:  cfg.WindowTitle,
		Platform:      platform.Describe(),
		Timestamp:     started,
	}

	suite := probe.NewSuite(log)
	suite.CPU.Samples = cfg.CPUSamples
	suite.CPU.Interval = time.Duration(cfg.CPUIntervalMS) * time.Millisecond

	snap := target.Resolve(suite.Inspector, suite.Windows, cfg.Target, cfg.WindowTitle, log)
	log.WithFields(logrus.Fields{
		"processes": len(snap.Processes),
		"windows":   len(snap.Windows),
	}).Debug("target snapshot resolved")

	probes := suite.Catalogue()
	groups := make(map[string]string, len(probes))
	for _, p := range probes {
		groups[p.Name] = p.Group
	}

	var obs probe.Observer
	var emitter *events.Emitter
	var console *report.Console

	if cfg.NDJSON {
		emitter = events.NewEmitter(cmd.OutOrStdout())
		if err := emitter.Emit(events.Event{
			Type:    events.TypeAuditStart,
			Message: "Starting stealth audit",
			Fields: map[string]interface{}{
				"target":           cfg.Target,
				"windowTitle":      cfg.WindowTitle,
				"matchedProcesses": len(snap.Processes),
				"matchedWindows":   len(snap.Windows),
			},
		}); err != nil {
			return err
		}
		obs = func(r probe.Result) {
			if err := emitter.Emit(events.ProbeResult(groups[r.Test], r)); err != nil {
				log.WithError(err).Warn("failed to emit probe event")
			}
		}
	} else {
		console = report.NewConsole(cmd.OutOrStdout())
		console.Start(meta)
		obs = func(r probe.Result) {
			console.Result(groups[r.Test], r)
		}
	}

	results := probe.RunAll(cmd.Context(), probes, snap, obs)
	doc := report.Build(meta, results)

	reportPath := cfg.ReportFile
	if reportPath == "" {
		reportPath = filepath.Join(cfg.OutputDir, report.DefaultFilename(started))
	}
	if err := doc.Write(reportPath); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.HistoryFile != "" {
		if err := recordHistory(cfg.HistoryFile, doc, reportPath); err != nil {
			log.WithError(err).Warn("failed to record run history")
		}
	}

	if cfg.NDJSON {
		if err := emitter.Emit(events.Event{
			Type:   events.TypeReportWritten,
			Fields: map[string]interface{}{"path": reportPath},
		}); err != nil {
			return err
		}
		summary := probe.Score(results)
		return emitter.Emit(events.Event{
			Type:    events.TypeAuditFinished,
			Message: "Audit complete",
			Fields: map[string]interface{}{
				"passed": summary.Passed,
				"total":  summary.Total,
				"score":  summary.Percentage,
			},
		})
	}

	console.Summary(results)
	fmt.Fprintf(cmd.OutOrStdout(), "\nDetailed report saved to %s\n", reportPath)
	return nil
}

func recordHistory(path string, doc report.Document, reportPath string) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SaveRun(doc, reportPath)
}
