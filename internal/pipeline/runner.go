package pipeline

import (
	"context"
	"fmt"

	"github.com/backmassage/solidname/internal/apply"
	"github.com/backmassage/solidname/internal/classify"
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/display"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/inventory"
	"github.com/backmassage/solidname/internal/logging"
	"github.com/backmassage/solidname/internal/naming"
)

// Plan is everything a run decides before touching the host.
type Plan struct {
	Inventory      *inventory.Inventory
	Classification *classify.Classification
	Assignments    []naming.Assignment
}

// BuildPlan collects, classifies and names the solids of cfg.SolidGroup.
// It never mutates store.
func BuildPlan(cfg *config.Config, store host.Store) (*Plan, error) {
	inv, err := inventory.Collect(store, cfg.SolidGroup)
	if err != nil {
		return nil, err
	}
	c := classify.Classify(inv, cfg.Heuristics)
	return &Plan{
		Inventory:      inv,
		Classification: c,
		Assignments:    naming.Assign(c),
	}, nil
}

// Run is the geometry renaming entry point. It returns an error only when
// the solid group cannot be enumerated or the report cannot be written;
// rename failures are recorded in the result.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, store host.Store) (*RunResult, error) {
	res := newRunResult()
	log = log.With("run_id", res.RunID.String())

	plan, err := BuildPlan(cfg, store)
	if err != nil {
		return res, err
	}
	res.Seen = plan.Inventory.Len()
	res.Degraded = len(plan.Inventory.Warnings)
	logPlan(cfg, log, plan)

	steps := naming.Stage(plan.Assignments, plan.Inventory.IDs())
	res.record(apply.New(store, log, cfg.DryRun).Apply(ctx, steps))

	return res, finish(cfg, log, res)
}

// RunGrouped names the children of each configured parent <prefix>_NN in
// host order, through the same staging and apply steps as [Run].
func RunGrouped(ctx context.Context, cfg *config.Config, log *logging.Logger, store host.Store) (*RunResult, error) {
	res := newRunResult()
	log = log.With("run_id", res.RunID.String())

	live, err := store.Solids(cfg.SolidGroup)
	if err != nil {
		return res, fmt.Errorf("%w in group %q: %w", inventory.ErrEnumerate, cfg.SolidGroup, err)
	}
	if len(cfg.Prefixes) == 0 {
		log.Warn("No prefix rules configured")
	}

	resolver := naming.NewCollisionResolver()
	claimed := make(map[string]string) // child -> parent that named it
	var assignments []naming.Assignment
	for _, rule := range cfg.Prefixes {
		children, err := store.Children(rule.Parent)
		if err != nil {
			log.Warn("Cannot list children of %s: %v", rule.Parent, err)
			continue
		}
		if len(children) == 0 {
			log.Info("No children under %s", rule.Parent)
			continue
		}

		var fresh []string
		for _, ch := range children {
			if owner, dup := claimed[ch]; dup {
				log.Debug(cfg.Verbose, "%s already named under %s", ch, owner)
				continue
			}
			claimed[ch] = rule.Parent
			fresh = append(fresh, ch)
		}
		log.Info("%s: %d children -> %s_NN", rule.Parent, len(fresh), rule.Prefix)
		assignments = append(assignments, naming.ByParent(rule.Parent, rule.Prefix, fresh, resolver)...)
	}
	res.Seen = len(assignments)

	for _, a := range assignments {
		live = append(live, a.ID)
	}
	steps := naming.Stage(assignments, live)
	res.record(apply.New(store, log, cfg.DryRun).Apply(ctx, steps))

	return res, finish(cfg, log, res)
}

// finish logs the summary and writes the report when one is configured.
func finish(cfg *config.Config, log *logging.Logger, res *RunResult) error {
	logSummary(cfg, log, res)
	if cfg.ReportPath == "" {
		return nil
	}
	if err := WriteReport(cfg.ReportPath, cfg, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Info("Report: %s", cfg.ReportPath)
	return nil
}

// --- Logging helpers ---

func logPlan(cfg *config.Config, log *logging.Logger, plan *Plan) {
	log.Info("Found %d solids in %s", plan.Inventory.Len(), plan.Inventory.Group)
	for _, w := range plan.Inventory.Warnings {
		log.Warn("%v (left unclassified)", w)
	}

	c := plan.Classification
	counts := c.Counts()
	for _, cat := range classify.All {
		log.Debug(cfg.Verbose, "  %-16s %d", cat, counts[cat])
	}
	if c.Package == nil && plan.Inventory.Len() > 0 {
		log.Debug(cfg.Verbose, "No package body found; containment skipped")
	}
	for _, a := range plan.Assignments {
		if a.Record == nil {
			continue
		}
		log.Debug(cfg.Verbose, "  %s: %s #%d, t=%s, area=%s, vol=%s",
			a.ID, a.Category, a.Rank,
			display.FormatMM(a.Record.Thickness()),
			display.FormatArea(a.Record.PlanformArea()),
			display.FormatVolume(a.Record.VolumeProxy()))
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
}

func logSummary(cfg *config.Config, log *logging.Logger, res *RunResult) {
	log.Info("==============================")
	log.Info("Seen: %d, renamed: %d (%d via fallback), unchanged: %d, failed: %d",
		res.Seen, res.TotalRenamed(), res.RenamedViaFallback, res.Unchanged, len(res.Failures))
	if res.Degraded > 0 {
		log.Warn("%d solids had no bounding box", res.Degraded)
	}
	if res.Interrupted {
		log.Warn("Interrupted: %d solids not processed", res.Skipped)
	}
	if cfg.DryRun {
		log.Done("dry run: %d solids would be renamed", res.Planned)
		return
	}
	log.Done("renamed %d solids", res.TotalRenamed())
}
