// Package pipeline wires the run together: inventory, classify, name,
// stage and apply, then summarise.
//
// Types:
//   - RunResult (Seen, Attempted, Renamed, RenamedViaFallback, Unchanged,
//     Planned, Failures; created fresh per run under a new RunID)
//   - Plan (the pure half of a run: inventory, classification, assignments)
//
// Functions:
//   - BuildPlan(cfg, store) → Plan
//   - Run(ctx, cfg, log, store) → RunResult
//     Geometry renaming over the configured solid group.
//   - RunGrouped(ctx, cfg, log, store) → RunResult
//     Parent-prefix renaming over cfg.Prefixes.
//   - WriteReport(path, cfg, res)
//
// Only ErrEnumerate aborts a run; every other failure is recorded in the
// result and the run continues.
package pipeline
