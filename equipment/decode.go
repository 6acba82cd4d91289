package equipment

import (
	"encoding/json"
	"fmt"
)

// Rooms arrive as client snapshots. Decoding repairs what the editing
// operations would never produce: counters below zero, outlet blocks over
// capacity and repeated specialized outlets. Unknown specialized outlets are
// rejected.

func (b *OutletBlock) UnmarshalJSON(data []byte) error {
	type plain OutletBlock
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = ClampBlock(OutletBlock(raw))
	return nil
}

func (f *LightingFixture) UnmarshalJSON(data []byte) error {
	type plain LightingFixture
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw.Quantity = max(raw.Quantity, 0)
	raw.Switches = max(raw.Switches, 0)
	raw.Detectors = max(raw.Detectors, 0)
	*f = LightingFixture(raw)
	return nil
}

func (e *Equipment) UnmarshalJSON(data []byte) error {
	type plain Equipment
	var raw plain
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	outlets, err := dedupeSpecializedOutlets(raw.SpecializedOutlets)
	if err != nil {
		return err
	}
	raw.SpecializedOutlets = outlets
	*e = Equipment(raw)
	return nil
}

// dedupeSpecializedOutlets keeps the first occurrence of each outlet.
func dedupeSpecializedOutlets(outlets []SpecializedOutlet) ([]SpecializedOutlet, error) {
	if outlets == nil {
		return nil, nil
	}
	seen := make(map[SpecializedOutlet]bool, len(outlets))
	out := make([]SpecializedOutlet, 0, len(outlets))
	for _, o := range outlets {
		if !o.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSpecializedOutlet, o)
		}
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out, nil
}
