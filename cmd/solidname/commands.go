package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/backmassage/solidname/internal/check"
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/display"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/logging"
	"github.com/backmassage/solidname/internal/pipeline"
)

// runner is pipeline.Run or pipeline.RunGrouped.
type runner func(context.Context, *config.Config, *logging.Logger, host.Store) (*pipeline.RunResult, error)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <snapshot>",
		Short: "Classify solids and apply canonical names",
		Args:  cobra.ExactArgs(1),
	}
	a := newApp(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.apply(args, pipeline.Run)
	}
	return cmd
}

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group <snapshot>",
		Short: "Name the children of configured parents <prefix>_NN",
		Long: `group renames the children of each parent listed in the config file's
prefixes (or given with --prefix parent=prefix) to <prefix>_01, <prefix>_02, ...
in host order. Parents are processed in the order they are configured.`,
		Args: cobra.ExactArgs(1),
	}
	a := newApp(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return a.apply(args, pipeline.RunGrouped)
	}
	return cmd
}

// apply runs one of the renaming pipelines and writes the snapshot back
// when anything changed.
func (a *app) apply(args []string, runFn runner) error {
	defer a.close()
	if err := a.setup(args); err != nil {
		return err
	}
	a.header()

	ctx, cancel := a.signalContext()
	defer cancel()

	res, err := runFn(ctx, &a.cfg, a.log, a.store)
	if err != nil {
		a.log.Error("%v", err)
		return errReported
	}

	if !a.cfg.DryRun && res.TotalRenamed() > 0 {
		if err := host.SaveSnapshot(a.cfg.SnapshotPath, a.store); err != nil {
			a.log.Error("Cannot save snapshot: %v", err)
			return errReported
		}
		a.log.Info("Saved %s", a.cfg.SnapshotPath)
	}
	if len(res.Failures) > 0 || res.Interrupted {
		return errReported
	}
	return nil
}

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <snapshot>",
		Short: "Print the proposed names without renaming anything",
		Args:  cobra.ExactArgs(1),
	}
	a := newApp(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer a.close()
		if err := a.setup(args); err != nil {
			return err
		}

		plan, err := pipeline.BuildPlan(&a.cfg, a.store)
		if err != nil {
			a.log.Error("%v", err)
			return errReported
		}
		for _, w := range plan.Inventory.Warnings {
			a.log.Warn("%v (left unclassified)", w)
		}
		return display.WriteAssignments(cmd.OutOrStdout(), plan.Assignments)
	}
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <snapshot>",
		Short: "Report solid counts, missing geometry and threshold problems",
		Args:  cobra.ExactArgs(1),
	}
	a := newApp(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		defer a.close()
		if err := a.setup(args); err != nil {
			return err
		}

		sum, err := check.RunCheck(&a.cfg, a.store, a.log)
		if err != nil || !sum.OK() {
			return errReported
		}
		return nil
	}
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "solidname version: %s\n", version)
			fmt.Fprintf(out, "Git commit: %s\n", commit)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		},
	}
}
