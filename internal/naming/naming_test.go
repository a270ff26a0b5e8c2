package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/solidname/internal/classify"
	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/host"
	"github.com/backmassage/solidname/internal/inventory"
)

func classifySolids(t *testing.T, solids ...host.Solid) *classify.Classification {
	t.Helper()
	inv, err := inventory.Collect(host.NewMemoryStore("", solids), host.DefaultGroup)
	require.NoError(t, err)
	return classify.Classify(inv, config.DefaultHeuristics())
}

func names(as []Assignment) map[string]string {
	out := make(map[string]string, len(as))
	for _, a := range as {
		out[a.ID] = a.Name
	}
	return out
}

func TestSeq(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "Conductive_01"},
		{9, "Conductive_09"},
		{10, "Conductive_10"},
		{99, "Conductive_99"},
		{100, "Conductive_100"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Seq("Conductive", tt.n))
	}
}

func TestAssign_ScenarioA(t *testing.T) {
	c := classifySolids(t,
		host.Solid{Name: "Body1", Box: host.Box{-50, -50, 0, 50, 50, 1.6}},
		host.Solid{Name: "Body2", Box: host.Box{0, 0, 1.6, 50, 50, 1.65}},
		host.Solid{Name: "Body3", Box: host.Box{0, 0, 1.6, 60, 50, 1.65}},
		host.Solid{Name: "Body4", Box: host.Box{0, 0, 1.6, 40, 50, 1.65}},
	)
	as := Assign(c)

	assert.Equal(t, map[string]string{
		"Body1": "Substrate_Primary",
		"Body3": "Conductive_01",
		"Body2": "Conductive_02",
		"Body4": "Conductive_03",
	}, names(as))
}

func TestAssign_ScenarioB(t *testing.T) {
	c := classifySolids(t,
		host.Solid{Name: "Body1", Box: host.Box{-29, -29, 0, 29, 29, 3}},
		host.Solid{Name: "Body2", Box: host.Box{-4.5, -7, 3, 4.5, 7, 3.5}},
	)
	assert.Equal(t, map[string]string{
		"Body1": "Package_Primary",
		"Body2": "Package_Sub_01",
	}, names(Assign(c)))
}

func TestAssign_ScenarioC(t *testing.T) {
	c := classifySolids(t, host.Solid{Name: "Body1", Unavailable: true})
	as := Assign(c)

	require.Len(t, as, 1)
	assert.Equal(t, "Imported_01", as[0].Name)
	assert.Equal(t, classify.Unclassified, as[0].Category)
}

func TestAssign_SubstrateExtrasAndOrder(t *testing.T) {
	c := classifySolids(t,
		host.Solid{Name: "Small", Box: host.Box{200, 0, 0, 210, 10, 1.6}},
		host.Solid{Name: "Big", Box: host.Box{0, 0, 0, 100, 100, 1.6}},
		host.Solid{Name: "Mid", Box: host.Box{300, 0, 0, 350, 50, 1.6}},
		host.Solid{Name: "Rock", Box: host.Box{500, 0, 0, 510, 10, 10}},
	)
	as := Assign(c)

	require.Len(t, as, 4)
	assert.Equal(t, "Substrate_Primary", as[0].Name)
	assert.Equal(t, "Big", as[0].ID)
	assert.Equal(t, 1, as[0].Rank)
	assert.Equal(t, "Substrate_Extra_01", as[1].Name)
	assert.Equal(t, "Mid", as[1].ID)
	assert.Equal(t, "Substrate_Extra_02", as[2].Name)
	assert.Equal(t, "Small", as[2].ID)
	assert.Equal(t, "Imported_01", as[3].Name, "sequence restarts per category")
}

func TestAssign_GapFreeAndUnique(t *testing.T) {
	var solids []host.Solid
	for i := 0; i < 12; i++ {
		x := float64(i * 100)
		solids = append(solids, host.Solid{
			Name: Seq("Body", i+1),
			Box:  host.Box{x, 0, 0, x + float64(10+i), 10, 0.05},
		})
	}
	as := Assign(classifySolids(t, solids...))

	seen := make(map[string]bool)
	for i, a := range as {
		assert.Equal(t, Seq("Conductive", i+1), a.Name)
		assert.False(t, seen[a.Name])
		seen[a.Name] = true
	}
	assert.Equal(t, Seq("Body", 12), as[0].ID, "largest volume ranks first")
}

func TestAssignment_UnchangedAndLabel(t *testing.T) {
	a := Assignment{ID: "Conductive_01", Name: "Conductive_01", Category: classify.ConductiveSheet}
	assert.True(t, a.Unchanged())
	assert.Equal(t, "ConductiveSheet", a.Label())

	p := Assignment{ID: "Body1", Name: "PCB_01", Parent: "OpenCASCADESTEPtranslator8"}
	assert.False(t, p.Unchanged())
	assert.Equal(t, "parent OpenCASCADESTEPtranslator8", p.Label())
}

func TestByParent(t *testing.T) {
	cr := NewCollisionResolver()
	as := ByParent("T8", "PCB", []string{"Body1", "Body2"}, cr)
	assert.Equal(t, map[string]string{"Body1": "PCB_01", "Body2": "PCB_02"}, names(as))
	assert.Equal(t, "T8", as[0].Parent)

	// A second parent sharing the prefix does not collide.
	more := ByParent("T11", "PCB", []string{"Body7"}, cr)
	assert.Equal(t, "PCB_01_dup1", more[0].Name)
}

func TestCollisionResolver(t *testing.T) {
	cr := NewCollisionResolver()

	assert.Equal(t, "PCB_01", cr.Resolve("a", "PCB_01"))
	assert.Equal(t, "PCB_01_dup1", cr.Resolve("b", "PCB_01"))
	assert.Equal(t, "PCB_01_dup2", cr.Resolve("c", "PCB_01"))
	// Same id claiming the same name is idempotent.
	assert.Equal(t, "PCB_01", cr.Resolve("a", "PCB_01"))
}

// --- Stage ---

func stepsOf(steps []Step) [][2]string {
	out := make([][2]string, len(steps))
	for i, s := range steps {
		out[i] = [2]string{s.Assignment.ID, s.To}
	}
	return out
}

func TestStage_NoConflicts(t *testing.T) {
	as := []Assignment{
		{ID: "Body1", Name: "Substrate_Primary"},
		{ID: "Conductive_01", Name: "Conductive_01"},
	}
	steps := Stage(as, []string{"Body1", "Conductive_01"})

	assert.Equal(t, [][2]string{{"Body1", "Substrate_Primary"}, {"Conductive_01", "Conductive_01"}}, stepsOf(steps))
	for _, s := range steps {
		assert.True(t, s.Final())
	}
}

func TestStage_Swap(t *testing.T) {
	as := []Assignment{
		{ID: "Conductive_01", Name: "Conductive_02"},
		{ID: "Conductive_02", Name: "Conductive_01"},
	}
	steps := Stage(as, []string{"Conductive_01", "Conductive_02"})

	assert.Equal(t, [][2]string{
		{"Conductive_01", "__stage_01"},
		{"Conductive_02", "__stage_02"},
		{"Conductive_01", "Conductive_02"},
		{"Conductive_02", "Conductive_01"},
	}, stepsOf(steps))
	assert.True(t, steps[0].Staging)
	assert.True(t, steps[3].Final())
}

func TestStage_ChainDefersBlockedMove(t *testing.T) {
	as := []Assignment{
		{ID: "A", Name: "B"},
		{ID: "B", Name: "C"},
	}
	steps := Stage(as, []string{"A", "B", "__stage_01"})

	assert.Equal(t, [][2]string{
		{"A", "__stage_02"},
		{"B", "C"},
		{"A", "B"},
	}, stepsOf(steps))
}

func TestStage_TargetHeldOutsidePlan(t *testing.T) {
	// "Imported_01" belongs to a solid that is not being renamed: no staging.
	as := []Assignment{{ID: "Body1", Name: "Imported_01"}}
	steps := Stage(as, []string{"Body1", "Imported_01"})

	assert.Equal(t, [][2]string{{"Body1", "Imported_01"}}, stepsOf(steps))
}
