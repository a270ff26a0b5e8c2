// Command solidname classifies the anonymous solids of an imported
// assembly from their bounding boxes and renames them canonically.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/display"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/logging"
	"github.com/backmassage/solidname/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// errReported means the failure was already logged; exit 1 quietly.
var errReported = errors.New("reported")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "solidname: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "solidname",
		Short: "Classify and rename imported solids by geometry",
		Long: `solidname re-identifies the anonymous bodies of a STEP import (Body1, Body2, ...)
as substrate, package, sub-component, conductive sheet or unclassified, using only
their bounding boxes, and gives them canonical names such as Substrate_Primary,
Package_Sub_01 and Conductive_03.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRenameCmd(), newPlanCmd(), newGroupCmd(), newCheckCmd(), newVersionCmd())
	return root
}

// app is the per-command state shared by every subcommand that works on a
// snapshot.
type app struct {
	cfg   config.Config
	flags *config.Flags
	log   *logging.Logger
	store *host.MemoryStore
}

// newApp binds the common flags onto cmd.
func newApp(cmd *cobra.Command) *app {
	a := &app{cfg: config.DefaultConfig()}
	a.flags = config.BindFlags(cmd.Flags(), &a.cfg)
	return a
}

// setup runs in two phases. Until the logger exists, errors are returned
// for run to print; afterwards they go through the logger.
func (a *app) setup(args []string) error {
	if err := a.flags.Apply(&a.cfg, args); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	log, err := logging.NewLogger(&a.cfg)
	if err != nil {
		return err
	}
	a.log = log

	store, err := host.LoadSnapshot(a.cfg.SnapshotPath)
	if err != nil {
		a.log.Error("Cannot load snapshot: %v", err)
		return errReported
	}
	a.store = store
	return nil
}

func (a *app) close() {
	if a.log != nil {
		_ = a.log.Close()
	}
}

// header prints the banner on a terminal and the run preamble.
func (a *app) header() {
	if term.IsTerminal(os.Stdout) {
		display.PrintBanner(os.Stdout)
	}
	a.log.Info("=== solidname v%s (%s) ===", version, commit)
	a.log.Info("Snapshot: %s", a.cfg.SnapshotPath)
	a.log.Debug(a.cfg.Verbose, "Heuristics: substrate %s, package %s, sheet <= %s, margin %s",
		a.cfg.Heuristics.SubstrateThickness, a.cfg.Heuristics.PackageThickness,
		display.FormatMM(a.cfg.Heuristics.SheetThicknessMax),
		display.FormatMM(a.cfg.Heuristics.ContainmentMargin))
}

// signalContext cancels on SIGINT/SIGTERM so the applier stops between
// renames instead of mid-call.
func (a *app) signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			a.log.Warn("Received interrupt, finishing current rename…")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(sigCh)
		cancel()
	}
}
