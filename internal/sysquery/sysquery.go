// Package sysquery shells out to the system utilities a monitoring tool would
// use to look for a process: tasklist, wmic, and powershell. Each query is
// bounded by its own timeout so a hung utility can never stall a run.
package sysquery

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	tasklistTimeout   = 10 * time.Second
	wmicTimeout       = 15 * time.Second
	powershellTimeout = 15 * time.Second
)

// Runner defines the external process queries the probe catalogue consumes.
type Runner interface {
	Tasklist(ctx context.Context) (string, error)
	WMICProcessList(ctx context.Context) (string, error)
	PowerShellProcessQuery(ctx context.Context, nameFilter string) (string, error)
}

// CommandRunner executes the real system utilities.
type CommandRunner struct{}

// NewRunner returns a default command runner.
func NewRunner() Runner {
	return &CommandRunner{}
}

// Available reports whether the named utility is discoverable on PATH.
func Available(binary string) error {
	if _, err := exec.LookPath(binary); err != nil {
		return fmt.Errorf("%s not found: %w", binary, err)
	}
	return nil
}

// Tasklist runs `tasklist /fo csv` and returns its stdout.
func (r *CommandRunner) Tasklist(ctx context.Context) (string, error) {
	return r.run(ctx, tasklistTimeout, "tasklist", "/fo", "csv")
}

// WMICProcessList runs a WMI process query and returns its stdout.
func (r *CommandRunner) WMICProcessList(ctx context.Context) (string, error) {
	return r.run(ctx, wmicTimeout, "wmic", "process", "get", "name,processid,executablepath", "/format:csv")
}

// PowerShellProcessQuery runs Get-Process filtered on the target name and
// returns its stdout.
func (r *CommandRunner) PowerShellProcessQuery(ctx context.Context, nameFilter string) (string, error) {
	// Quotes are stripped from the filter so it cannot break out of the
	// -like pattern; everything else is matched literally by PowerShell.
	sanitized := strings.NewReplacer(`"`, "", "'", "", "`", "").Replace(nameFilter)
	script := fmt.Sprintf(
		`Get-Process | Where-Object {$_.ProcessName -like "*%s*"} | Select-Object ProcessName,Id,MainWindowTitle`,
		sanitized,
	)
	return r.run(ctx, powershellTimeout, "powershell", "-NoProfile", "-Command", script)
}

func (r *CommandRunner) run(ctx context.Context, timeout time.Duration, binary string, args ...string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Binary names are constants and args are constructed programmatically,
	// so no shell interpretation takes place.
	cmd := exec.CommandContext(runCtx, binary, args...) // #nosec G204
	output, err := cmd.Output()
	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %s", binary, timeout)
		}
		return "", fmt.Errorf("%s failed: %w", binary, err)
	}

	return string(output), nil
}
