package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/solidname/internal/classify"
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/inventory"
	"github.com/backmassage/solidname/internal/naming"
	"github.com/backmassage/solidname/internal/term"
)

func TestFormatMeasurements(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"board thickness", FormatMM(1.6), "1.60 mm"},
		{"foil", FormatMM(0.05), "0.05 mm"},
		{"area", FormatArea(2500), "2500.0 mm²"},
		{"small volume", FormatVolume(125), "125.0 mm³"},
		{"large volume", FormatVolume(16000), "16.00 cm³"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestWriteAssignments(t *testing.T) {
	rec := inventory.NewRecord("Body1", 0, host.Box{0, 0, 0, 50, 50, 1.6})
	as := []naming.Assignment{
		{ID: "Body1", Name: "Substrate_Primary", Category: classify.Substrate, Rank: 1, Record: rec},
		{ID: "Imported_01", Name: "Imported_01", Category: classify.Unclassified, Rank: 1},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAssignments(&buf, as))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, []string{"ID", "NAME", "SOURCE", "RANK", "THICKNESS", "AREA"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Body1", "Substrate_Primary", "Substrate", "1", "1.60", "mm", "2500.0", "mm²"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Imported_01", "=", "Unclassified", "1", "-", "-"}, strings.Fields(lines[2]))
}

func TestPrintBanner_NoColor(t *testing.T) {
	term.Configure(config.ColorNever)
	defer term.Configure(config.ColorAuto)

	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "|___/")
}
