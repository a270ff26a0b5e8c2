// Package config holds runtime configuration: defaults, the geometric
// heuristics used by the classifier, CLI flag binding, and validation.
// All lengths are millimetres, matching the unit STEP imports arrive in.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Range is a thickness band in millimetres. Whether each bound is inclusive
// is decided by the rule that consumes it.
type Range struct {
	Min float64 `mapstructure:"min" yaml:"min"`
	Max float64 `mapstructure:"max" yaml:"max"`
}

// Contains reports whether v lies in the closed interval [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ContainsOpenMin reports whether v lies in the half-open interval (Min, Max].
func (r Range) ContainsOpenMin(v float64) bool {
	return v > r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%g-%g mm", r.Min, r.Max)
}

// Heuristics are the four geometric thresholds driving classification.
type Heuristics struct {
	// SubstrateThickness is the inclusive band of a rigid board (FR4 ~1.6 mm).
	SubstrateThickness Range `mapstructure:"substrate_thickness" yaml:"substrate_thickness"`
	// PackageThickness selects package bodies: exclusive Min, inclusive Max.
	PackageThickness Range `mapstructure:"package_thickness" yaml:"package_thickness"`
	// SheetThicknessMax is the ceiling for copper foil and similar sheets.
	SheetThicknessMax float64 `mapstructure:"sheet_thickness_max" yaml:"sheet_thickness_max"`
	// ContainmentMargin pads the package footprint on every side.
	ContainmentMargin float64 `mapstructure:"containment_margin" yaml:"containment_margin"`
}

// DefaultHeuristics returns thresholds tuned for a GPU board assembly:
// 1.6 mm FR4, 20-150 um copper, and a package a few millimetres thick.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		SubstrateThickness: Range{Min: 1.2, Max: 2.2},
		PackageThickness:   Range{Min: 0.15, Max: 5.0},
		SheetThicknessMax:  0.15,
		ContainmentMargin:  2.0,
	}
}

// Validate checks units and ordering of every threshold.
func (h Heuristics) Validate() error {
	if err := validateRange("substrate thickness", h.SubstrateThickness); err != nil {
		return err
	}
	if err := validateRange("package thickness", h.PackageThickness); err != nil {
		return err
	}
	if h.SheetThicknessMax < 0 {
		return fmt.Errorf("sheet thickness max must be >= 0 mm (got %g)", h.SheetThicknessMax)
	}
	if h.ContainmentMargin < 0 {
		return fmt.Errorf("containment margin must be >= 0 mm (got %g)", h.ContainmentMargin)
	}
	return nil
}

func validateRange(name string, r Range) error {
	if r.Min < 0 || r.Max < 0 {
		return fmt.Errorf("%s must be non-negative (got %s)", name, r)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %g mm exceeds max %g mm", name, r.Min, r.Max)
	}
	return nil
}

// PrefixRule maps a parent node of the imported tree to a name prefix.
type PrefixRule struct {
	Parent string `mapstructure:"parent" yaml:"parent"`
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [Flags.Apply] (config file, env, flags) before being passed by pointer to
// the packages that need it.
type Config struct {
	// Host snapshot (set from the positional arg).
	SnapshotPath string

	// Inventory.
	SolidGroup string // Default: "Solids".

	// Classification thresholds.
	Heuristics Heuristics

	// Parent-prefix renaming rules, processed in order.
	Prefixes []PrefixRule

	// Behavior flags.
	DryRun     bool
	ReportPath string // Optional YAML run report.

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional structured log file.
	ConfigFile string    // Optional YAML heuristics file.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Flags.Apply] layers file, env and CLI overrides.
func DefaultConfig() Config {
	return Config{
		SolidGroup: "Solids",
		Heuristics: DefaultHeuristics(),
		ColorMode:  ColorAuto,
	}
}

// Validate checks enum fields, thresholds and prefix rules, and requires a
// snapshot path.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := c.Heuristics.Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.SolidGroup) == "" {
		return errors.New("solid group must not be empty")
	}

	seen := make(map[string]bool, len(c.Prefixes))
	for _, p := range c.Prefixes {
		if p.Parent == "" || p.Prefix == "" {
			return fmt.Errorf("prefix rule needs both parent and prefix (got %q=%q)", p.Parent, p.Prefix)
		}
		if seen[p.Parent] {
			return fmt.Errorf("duplicate prefix rule for parent %q", p.Parent)
		}
		seen[p.Parent] = true
	}

	if c.SnapshotPath == "" {
		return errors.New("need exactly one snapshot path")
	}
	return nil
}

// ParsePrefixRule parses "parent=prefix".
func ParsePrefixRule(s string) (PrefixRule, error) {
	parent, prefix, ok := strings.Cut(s, "=")
	parent, prefix = strings.TrimSpace(parent), strings.TrimSpace(prefix)
	if !ok || parent == "" || prefix == "" {
		return PrefixRule{}, fmt.Errorf("invalid prefix rule %q (use parent=prefix)", s)
	}
	return PrefixRule{Parent: parent, Prefix: prefix}, nil
}
