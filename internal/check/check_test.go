package check

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/solidname/internal/classify"
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/inventory"
)

type recLogger struct{ lines []string }

func (l *recLogger) add(level, f string, args ...interface{}) {
	l.lines = append(l.lines, "["+level+"] "+fmt.Sprintf(f, args...))
}
func (l *recLogger) Info(f string, a ...interface{})    { l.add("INFO", f, a...) }
func (l *recLogger) Success(f string, a ...interface{}) { l.add("OK", f, a...) }
func (l *recLogger) Warn(f string, a ...interface{})    { l.add("WARN", f, a...) }
func (l *recLogger) Error(f string, a ...interface{})   { l.add("ERROR", f, a...) }
func (l *recLogger) Debug(v bool, f string, a ...interface{}) {
	if v {
		l.add("DEBUG", f, a...)
	}
}

func (l *recLogger) String() string { return strings.Join(l.lines, "\n") }

func TestHeuristics_DefaultsAreClean(t *testing.T) {
	assert.Empty(t, Heuristics(config.DefaultHeuristics()))
}

func TestHeuristics_Findings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Heuristics)
		want   string
	}{
		{"package inside substrate", func(h *config.Heuristics) {
			h.SubstrateThickness = config.Range{Min: 0.1, Max: 6}
		}, "no package can be found"},
		{"sheet reaches substrate", func(h *config.Heuristics) {
			h.SheetThicknessMax = 1.2
		}, "thick sheets are taken as substrate"},
		{"sheet above package min", func(h *config.Heuristics) {
			h.SheetThicknessMax = 0.2
		}, "a sheet may be taken as the package"},
		{"zero margin", func(h *config.Heuristics) {
			h.ContainmentMargin = 0
		}, "containment margin is zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := config.DefaultHeuristics()
			tt.mutate(&h)
			got := Heuristics(h)
			require.NotEmpty(t, got)
			assert.Contains(t, strings.Join(got, "\n"), tt.want)
		})
	}
}

func TestRunCheck(t *testing.T) {
	store := host.NewMemoryStore("", []host.Solid{
		{Name: "Body1", Box: host.Box{-50, -50, 0, 50, 50, 1.6}},
		{Name: "Body2", Box: host.Box{-20, -20, 1.6, 20, 20, 4.6}},
		{Name: "Body3", Unavailable: true},
		{Name: "Body4", Parent: "T8", Box: host.Box{60, 0, 0, 80, 20, 0.035}},
	})
	cfg := config.DefaultConfig()
	cfg.Prefixes = []config.PrefixRule{{Parent: "T8", Prefix: "PCB"}, {Parent: "T9", Prefix: "Chip"}}
	log := &recLogger{}

	sum, err := RunCheck(&cfg, store, log)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Solids)
	assert.Equal(t, []string{"Body3"}, sum.Degraded)
	assert.Equal(t, 1, sum.Counts[classify.Substrate])
	assert.Equal(t, 1, sum.Counts[classify.PackagePrimary])
	assert.Equal(t, 1, sum.Counts[classify.ConductiveSheet])
	assert.Equal(t, 1, sum.Counts[classify.Unclassified])
	assert.Equal(t, []string{"No children under T9"}, sum.Findings)
	assert.False(t, sum.OK())

	out := log.String()
	assert.Contains(t, out, "[OK] 4 solids in Solids")
	assert.Contains(t, out, "[WARN] No bounding box for Body3")
	assert.Contains(t, out, "Package body: Body2")
	assert.Contains(t, out, "T8: 1 children -> PCB_NN")
	assert.Empty(t, store.Calls())
}

func TestRunCheck_Clean(t *testing.T) {
	store := host.NewMemoryStore("", []host.Solid{{Name: "Body1", Box: host.Box{0, 0, 0, 10, 10, 0.05}}})
	cfg := config.DefaultConfig()
	log := &recLogger{}

	sum, err := RunCheck(&cfg, store, log)
	require.NoError(t, err)
	assert.True(t, sum.OK())
	assert.Contains(t, log.String(), "No package body; containment skipped")
	assert.Contains(t, log.String(), "[OK] No problems found")
}

func TestRunCheck_UnknownGroup(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SolidGroup = "Bodies"
	log := &recLogger{}

	_, err := RunCheck(&cfg, host.NewMemoryStore("", nil), log)
	assert.ErrorIs(t, err, inventory.ErrEnumerate)
	assert.Contains(t, log.String(), "[ERROR]")
}
