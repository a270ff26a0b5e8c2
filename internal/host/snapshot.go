package host

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// --- Snapshot YAML wire types ---

type snapshotFile struct {
	Group  string          `yaml:"group,omitempty"`
	Solids []snapshotSolid `yaml:"solids"`
}

type snapshotSolid struct {
	Name        string    `yaml:"name"`
	Parent      string    `yaml:"parent,omitempty"`
	BBox        []float64 `yaml:"bbox,flow"`
	Locked      bool      `yaml:"locked,omitempty"`
	ReadOnly    bool      `yaml:"readonly,omitempty"`
	Unavailable bool      `yaml:"unavailable,omitempty"`
}

// LoadSnapshot reads a YAML snapshot of a design session. A solid with a
// missing or malformed bbox is loaded as unavailable so the inventory sees
// the same failure a live session would report.
func LoadSnapshot(path string) (*MemoryStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return ParseSnapshot(data)
}

// ParseSnapshot decodes snapshot YAML. Exported for testing without files.
func ParseSnapshot(data []byte) (*MemoryStore, error) {
	var raw snapshotFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot YAML: %w", err)
	}

	seen := make(map[string]bool, len(raw.Solids))
	solids := make([]Solid, 0, len(raw.Solids))
	for i, rs := range raw.Solids {
		if rs.Name == "" {
			return nil, fmt.Errorf("snapshot solid #%d has no name", i+1)
		}
		if seen[rs.Name] {
			return nil, fmt.Errorf("snapshot has duplicate solid %q", rs.Name)
		}
		seen[rs.Name] = true
		solids = append(solids, convertSolid(rs))
	}
	return NewMemoryStore(raw.Group, solids), nil
}

func convertSolid(rs snapshotSolid) Solid {
	sd := Solid{
		Name:        rs.Name,
		Parent:      rs.Parent,
		Locked:      rs.Locked,
		ReadOnly:    rs.ReadOnly,
		Unavailable: rs.Unavailable,
	}
	if len(rs.BBox) == len(sd.Box) {
		copy(sd.Box[:], rs.BBox)
		sd.HasBox = true
	} else {
		sd.Unavailable = true
	}
	return sd
}

// SaveSnapshot writes the store back in snapshot form.
func SaveSnapshot(path string, s *MemoryStore) error {
	raw := snapshotFile{Group: s.group}
	for _, sd := range s.solids {
		rs := snapshotSolid{
			Name:        sd.Name,
			Parent:      sd.Parent,
			Locked:      sd.Locked,
			ReadOnly:    sd.ReadOnly,
			Unavailable: sd.Unavailable,
		}
		if !sd.Unavailable || sd.HasBox {
			rs.BBox = append([]float64(nil), sd.Box[:]...)
		}
		raw.Solids = append(raw.Solids, rs)
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
