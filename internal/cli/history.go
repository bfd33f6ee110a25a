package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/stevedomin/termtable"

	"github.com/example/stealthprobe/internal/config"
	"github.com/example/stealthprobe/internal/history"
)

func newHistoryCmd(loader *config.Loader) *cobra.Command {
	flags := &runtimeFlagSet{}
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent audit runs from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := flags.toOverrides(cmd)
			cfg, err := loader.Load(overrides)
			if err != nil {
				return err
			}

			if cfg.HistoryFile == "" {
				return errors.New("no history file configured; provide --history-file or set STEALTHPROBE_HISTORY_FILE")
			}

			store, err := history.Open(cfg.HistoryFile)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			runs, err := store.Recent(limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderRunsTable(runs))
			return nil
		},
	}

	bindRuntimeFlags(cmd, flags)
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of runs to list")

	return cmd
}

func renderRunsTable(runs []history.Run) string {
	t := termtable.NewTable(nil, &termtable.TableOptions{
		Padding:      2,
		UseSeparator: true,
	})
	t.SetHeader([]string{"Time", "Target", "Score", "Passed", "Crit", "High", "Med", "Low"})

	for _, run := range runs {
		t.AddRow([]string{
			run.Timestamp.Format("2006-01-02 15:04"),
			run.TargetProcess,
			fmt.Sprintf("%.1f%%", run.ScorePercentage),
			fmt.Sprintf("%d/%d", run.PassedTests, run.TotalTests),
			strconv.Itoa(run.CriticalIssues),
			strconv.Itoa(run.HighIssues),
			strconv.Itoa(run.MediumIssues),
			strconv.Itoa(run.LowIssues),
		})
	}
	return t.Render()
}
