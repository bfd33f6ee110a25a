// Package history keeps an optional sqlite log of past run summaries so
// stealth scores can be compared across changes to the audited application.
// The audit itself never requires it; the store is only opened when a history
// file is configured.
package history

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/stealthprobe/internal/report"
)

// Run is one persisted run summary.
type Run struct {
	ID              uint `gorm:"primaryKey"`
	Timestamp       time.Time
	TargetProcess   string
	TargetWindow    string
	Platform        string
	TotalTests      int
	PassedTests     int
	ScorePercentage float64
	CriticalIssues  int
	HighIssues      int
	MediumIssues    int
	LowIssues       int
	ReportPath      string
}

// Store wraps the database connection.
type Store struct {
	db *gorm.DB
}

// Open connects to the sqlite file at path, creating schema as needed.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Run{}); err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// SaveRun records the summary row for a finished run.
func (s *Store) SaveRun(doc report.Document, reportPath string) error {
	timestamp, err := time.Parse(time.RFC3339, doc.Timestamp)
	if err != nil {
		timestamp = time.Now().UTC()
	}

	run := &Run{
		Timestamp:       timestamp,
		TargetProcess:   doc.TargetProcess,
		TargetWindow:    doc.TargetWindow,
		Platform:        doc.Platform,
		TotalTests:      doc.TotalTests,
		PassedTests:     doc.PassedTests,
		ScorePercentage: doc.ScorePercentage,
		CriticalIssues:  doc.Summary.Critical,
		HighIssues:      doc.Summary.High,
		MediumIssues:    doc.Summary.Medium,
		LowIssues:       doc.Summary.Low,
		ReportPath:      reportPath,
	}
	return s.db.Create(run).Error
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	var runs []Run
	err := s.db.Order("id desc").Limit(limit).Find(&runs).Error
	return runs, err
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
