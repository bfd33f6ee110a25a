package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "stealthprobe.config.yml"

	envTarget        = "STEALTHPROBE_TARGET"
	envWindowTitle   = "STEALTHPROBE_WINDOW_TITLE"
	envOutputDir     = "STEALTHPROBE_OUTPUT_DIR"
	envReportFile    = "STEALTHPROBE_REPORT_FILE"
	envHistoryFile   = "STEALTHPROBE_HISTORY_FILE"
	envNDJSON        = "STEALTHPROBE_NDJSON"
	envCPUSamples    = "STEALTHPROBE_CPU_SAMPLES"
	envCPUIntervalMS = "STEALTHPROBE_CPU_INTERVAL_MS"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
}

// RuntimeConfig contains the fully merged settings required by the sub-commands.
type RuntimeConfig struct {
	// Target is the required process-name substring to audit.
	Target string
	// WindowTitle optionally narrows the window match.
	WindowTitle string

	OutputDir   string
	ReportFile  string
	HistoryFile string
	NDJSON      bool

	CPUSamples    int
	CPUIntervalMS int
}

// Overrides captures values coming from env vars or CLI flags.
type Overrides struct {
	Target           string
	WindowTitle      string
	OutputDir        string
	ReportFile       string
	HistoryFile      string
	NDJSON           *bool
	CPUSamples       int
	CPUSamplesSet    bool
	CPUIntervalMS    int
	CPUIntervalMSSet bool
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		OutputDir:     "stealth-reports",
		CPUSamples:    5,
		CPUIntervalMS: 2000,
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.apply(fileOv)
	}

	cfg.apply(overridesFromEnv())
	cfg.apply(override)

	return cfg, nil
}

// Validate ensures the config contains the minimum required data for a run.
// A missing target is the one fatal input error the tool has.
func (c RuntimeConfig) Validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return errors.New("no target configured; provide --target or set STEALTHPROBE_TARGET")
	}

	if c.OutputDir == "" && c.ReportFile == "" {
		return errors.New("output directory cannot be empty when no report file is given")
	}

	if c.CPUSamples < 1 || c.CPUSamples > 60 {
		return fmt.Errorf("cpu samples must be between 1 and 60 (got %d)", c.CPUSamples)
	}

	if c.CPUIntervalMS < 100 || c.CPUIntervalMS > 60000 {
		return fmt.Errorf("cpu interval must be between 100 and 60000 ms (got %d)", c.CPUIntervalMS)
	}

	return nil
}

func (c *RuntimeConfig) apply(src Overrides) {
	if src.Target != "" {
		c.Target = strings.TrimSpace(src.Target)
	}

	if src.WindowTitle != "" {
		c.WindowTitle = strings.TrimSpace(src.WindowTitle)
	}

	if src.OutputDir != "" {
		c.OutputDir = src.OutputDir
	}

	if src.ReportFile != "" {
		c.ReportFile = src.ReportFile
	}

	if src.HistoryFile != "" {
		c.HistoryFile = src.HistoryFile
	}

	if src.NDJSON != nil {
		c.NDJSON = *src.NDJSON
	}

	if src.CPUSamplesSet {
		c.CPUSamples = src.CPUSamples
	}

	if src.CPUIntervalMSSet {
		c.CPUIntervalMS = src.CPUIntervalMS
	}
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		Target        string `yaml:"target"`
		WindowTitle   string `yaml:"windowTitle"`
		OutputDir     string `yaml:"outputDir"`
		ReportFile    string `yaml:"reportFile"`
		HistoryFile   string `yaml:"historyFile"`
		NDJSON        *bool  `yaml:"ndjson"`
		CPUSamples    *int   `yaml:"cpuSamples"`
		CPUIntervalMS *int   `yaml:"cpuIntervalMs"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	over := Overrides{
		Target:      raw.Target,
		WindowTitle: raw.WindowTitle,
		OutputDir:   raw.OutputDir,
		ReportFile:  raw.ReportFile,
		HistoryFile: raw.HistoryFile,
		NDJSON:      raw.NDJSON,
	}

	if raw.CPUSamples != nil {
		over.CPUSamples = *raw.CPUSamples
		over.CPUSamplesSet = true
	}

	if raw.CPUIntervalMS != nil {
		over.CPUIntervalMS = *raw.CPUIntervalMS
		over.CPUIntervalMSSet = true
	}

	return over, nil
}

func overridesFromEnv() Overrides {
	ov := Overrides{}

	if value := os.Getenv(envTarget); value != "" {
		ov.Target = value
	}

	if value := os.Getenv(envWindowTitle); value != "" {
		ov.WindowTitle = value
	}

	if value := os.Getenv(envOutputDir); value != "" {
		ov.OutputDir = value
	}

	if value := os.Getenv(envReportFile); value != "" {
		ov.ReportFile = value
	}

	if value := os.Getenv(envHistoryFile); value != "" {
		ov.HistoryFile = value
	}

	if value := os.Getenv(envNDJSON); value != "" {
		parsed := strings.EqualFold(value, "true") || value == "1"
		ov.NDJSON = &parsed
	}

	if value := os.Getenv(envCPUSamples); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			ov.CPUSamples = parsed
			ov.CPUSamplesSet = true
		}
	}

	if value := os.Getenv(envCPUIntervalMS); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			ov.CPUIntervalMS = parsed
			ov.CPUIntervalMSSet = true
		}
	}

	return ov
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
