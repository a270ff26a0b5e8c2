// Package check provides read-only snapshot diagnostics (the check
// subcommand): solid counts per category, degraded boxes, prefix rules
// with no children, and heuristic bands that shadow one another.
package check

import (
	"fmt"

	"github.com/backmassage/solidname/internal/classify"
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/display"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/inventory"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Summary is what RunCheck found.
type Summary struct {
	Solids   int
	Degraded []string
	Counts   map[classify.Category]int
	// Findings are heuristic and prefix problems, one line each.
	Findings []string
}

// OK reports whether nothing needs attention.
func (s *Summary) OK() bool {
	return len(s.Degraded) == 0 && len(s.Findings) == 0
}

// RunCheck inspects store without mutating it. It fails only when the
// solid group cannot be enumerated.
func RunCheck(cfg *config.Config, store host.Store, log Logger) (*Summary, error) {
	log.Info("=== Snapshot Check ===")

	inv, err := inventory.Collect(store, cfg.SolidGroup)
	if err != nil {
		log.Error("%v", err)
		return nil, err
	}
	sum := &Summary{Solids: inv.Len()}
	if inv.Len() == 0 {
		log.Warn("No solids in %s", cfg.SolidGroup)
	} else {
		log.Success("%d solids in %s", inv.Len(), cfg.SolidGroup)
	}

	for _, w := range inv.Warnings {
		sum.Degraded = append(sum.Degraded, w.ID)
		log.Warn("No bounding box for %s: %v", w.ID, w.Err)
	}

	for _, f := range Heuristics(cfg.Heuristics) {
		sum.Findings = append(sum.Findings, f)
		log.Warn("%s", f)
	}

	c := classify.Classify(inv, cfg.Heuristics)
	sum.Counts = c.Counts()
	log.Info("Categories:")
	for _, cat := range classify.All {
		log.Info("  %-16s %d", cat, sum.Counts[cat])
	}
	if c.Package != nil {
		log.Info("Package body: %s (%s thick, %s)", c.Package.ID,
			display.FormatMM(c.Package.Thickness()), display.FormatArea(c.Package.PlanformArea()))
	} else if inv.Len() > 0 {
		log.Info("No package body; containment skipped")
	}

	for _, rule := range cfg.Prefixes {
		children, err := store.Children(rule.Parent)
		switch {
		case err != nil:
			f := fmt.Sprintf("cannot list children of %s: %v", rule.Parent, err)
			sum.Findings = append(sum.Findings, f)
			log.Warn("%s", f)
		case len(children) == 0:
			f := fmt.Sprintf("No children under %s", rule.Parent)
			sum.Findings = append(sum.Findings, f)
			log.Warn("%s", f)
		default:
			log.Info("%s: %d children -> %s_NN", rule.Parent, len(children), rule.Prefix)
		}
	}

	if sum.OK() {
		log.Success("No problems found")
	}
	return sum, nil
}

// Heuristics reports threshold combinations under which a category can
// no longer be reached. Rules claim in order substrate, package, sheet,
// so an earlier band swallowing a later one hides it.
func Heuristics(h config.Heuristics) []string {
	var out []string
	sub, pkg := h.SubstrateThickness, h.PackageThickness

	if sub.Min <= pkg.Min && sub.Max >= pkg.Max {
		out = append(out, fmt.Sprintf("package band %s lies inside substrate band %s: no package can be found", pkg, sub))
	}
	if h.SheetThicknessMax >= sub.Min {
		out = append(out, fmt.Sprintf("sheet ceiling %s reaches substrate band %s: thick sheets are taken as substrate",
			display.FormatMM(h.SheetThicknessMax), sub))
	}
	if h.SheetThicknessMax > pkg.Min {
		out = append(out, fmt.Sprintf("sheet ceiling %s exceeds package minimum %s: a sheet may be taken as the package",
			display.FormatMM(h.SheetThicknessMax), display.FormatMM(pkg.Min)))
	}
	if h.ContainmentMargin == 0 {
		out = append(out, "containment margin is zero: only parts centred inside the package outline count")
	}
	return out
}
