package pipeline

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/backmassage/solidname/internal/apply"
	"github.com/backmassage/solidname/internal/config"
)

// Report is the YAML document written by --report.
type Report struct {
	RunID       string        `yaml:"run_id"`
	Group       string        `yaml:"group"`
	DryRun      bool          `yaml:"dry_run"`
	Summary     ReportSummary `yaml:"summary"`
	Assignments []ReportEntry `yaml:"assignments"`
	Failures    []Failure     `yaml:"failures,omitempty"`
}

// ReportSummary mirrors the RunResult counters.
type ReportSummary struct {
	Seen               int  `yaml:"seen"`
	Degraded           int  `yaml:"degraded"`
	Attempted          int  `yaml:"attempted"`
	Renamed            int  `yaml:"renamed"`
	RenamedViaFallback int  `yaml:"renamed_via_fallback"`
	Unchanged          int  `yaml:"unchanged"`
	Planned            int  `yaml:"planned,omitempty"`
	Skipped            int  `yaml:"skipped,omitempty"`
	Interrupted        bool `yaml:"interrupted,omitempty"`
}

// ReportEntry is one assignment and what became of it.
type ReportEntry struct {
	ID      string        `yaml:"id"`
	Name    string        `yaml:"name"`
	Source  string        `yaml:"source"`
	Rank    int           `yaml:"rank"`
	Outcome apply.Outcome `yaml:"outcome"`
	Staged  string        `yaml:"staged,omitempty"`
}

// NewReport builds the report for res.
func NewReport(cfg *config.Config, res *RunResult) Report {
	rep := Report{
		RunID:  res.RunID.String(),
		Group:  cfg.SolidGroup,
		DryRun: cfg.DryRun,
		Summary: ReportSummary{
			Seen:               res.Seen,
			Degraded:           res.Degraded,
			Attempted:          res.Attempted,
			Renamed:            res.Renamed,
			RenamedViaFallback: res.RenamedViaFallback,
			Unchanged:          res.Unchanged,
			Planned:            res.Planned,
			Skipped:            res.Skipped,
			Interrupted:        res.Interrupted,
		},
		Failures: res.Failures,
	}
	for _, a := range res.Attempts {
		rep.Assignments = append(rep.Assignments, ReportEntry{
			ID:      a.Assignment.ID,
			Name:    a.Assignment.Name,
			Source:  a.Assignment.Label(),
			Rank:    a.Assignment.Rank,
			Outcome: a.Outcome,
			Staged:  a.Staged,
		})
	}
	return rep
}

// WriteReport marshals the report for res to path, creating parent
// directories as needed.
func WriteReport(path string, cfg *config.Config, res *RunResult) error {
	b, err := yaml.Marshal(NewReport(cfg, res))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
