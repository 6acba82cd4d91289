package equipment

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomWith(lights []LightingFixture, blocks []OutletBlock, specialized ...SpecializedOutlet) Room {
	return Room{
		ID:   "r",
		Name: "Test",
		Equipment: Equipment{
			Lighting:           NewCollection(lights...),
			OutletBlocks:       NewCollection(blocks...),
			SpecializedOutlets: specialized,
		},
	}
}

func quantities(q QuoteResult) map[string]int {
	out := make(map[string]int, len(q.Materials))
	for _, m := range q.Materials {
		out[m.Name] = m.Quantity
	}
	return out
}

func TestCalculateQuote_SingleFixture(t *testing.T) {
	room := roomWith([]LightingFixture{{ID: "l1", Type: LightingDCL, Quantity: 2, Switches: 1}}, nil)

	got := CalculateQuote([]Room{room}, DefaultPriceTable())

	assert.Equal(t, map[string]int{
		"Point lumineux DCL":       2,
		"Interrupteur va-et-vient": 1,
		"Boite d'encastrement 1":   1,
		"Plaque de finition 1":     1,
	}, quantities(got))
}

func TestCalculateQuote_OutletBlockPricing(t *testing.T) {
	room := roomWith(nil, []OutletBlock{{ID: "b1", Outlets: 3}})
	prices := PriceTable{
		"Prise de courant":       3.42,
		"Boite d'encastrement 3": 6.01,
		"Plaque de finition 3":   4.32,
	}

	got := CalculateQuote([]Room{room}, prices)

	assert.InDelta(t, 3*3.42+6.01+4.32, got.TotalPrice, 1e-9)
	assert.InDelta(t, 20.59, got.TotalPrice, 1e-9)
	assert.Equal(t, map[string]int{
		"Prise de courant":       3,
		"Boite d'encastrement 3": 1,
		"Plaque de finition 3":   1,
	}, quantities(got))
}

func TestCalculateQuote_Rules(t *testing.T) {
	tests := []struct {
		name string
		room Room
		want map[string]int
	}{
		{
			name: "switches mounted one gang each",
			room: roomWith([]LightingFixture{{ID: "l", Type: LightingSpots, Quantity: 4, Switches: 3}}, nil),
			want: map[string]int{
				"Spots":                    4,
				"Interrupteur va-et-vient": 3,
				"Boite d'encastrement 1":   3,
				"Plaque de finition 1":     3,
			},
		},
		{
			name: "mixed block shares one mounting point",
			room: roomWith(nil, []OutletBlock{{ID: "b", Outlets: 2, RJ45: 1, TV: 1}}),
			want: map[string]int{
				"Prise de courant":       2,
				"Prise RJ45":             1,
				"Prise TV":               1,
				"Boite d'encastrement 4": 1,
				"Plaque de finition 4":   1,
			},
		},
		{
			name: "empty block adds nothing",
			room: roomWith(nil, []OutletBlock{{ID: "b"}}),
			want: map[string]int{},
		},
		{
			name: "fixture without switch",
			room: roomWith([]LightingFixture{{ID: "l", Type: LightingWallDCL, Quantity: 1}}, nil),
			want: map[string]int{"DCL applique": 1},
		},
		{
			name: "specialized outlets",
			room: roomWith(nil, nil, OutletOven, OutletHob),
			want: map[string]int{
				"Prise de courant":       2,
				"Boite d'encastrement 1": 2,
				"Plaque de finition 1":   2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateQuote([]Room{tt.room}, DefaultPriceTable())
			assert.Equal(t, tt.want, quantities(got))
		})
	}
}

func TestCalculateQuote_UnknownMaterialIsFree(t *testing.T) {
	room := roomWith([]LightingFixture{{ID: "l", Type: LightingFloodlight, Quantity: 2}}, nil)

	got := CalculateQuote([]Room{room}, DefaultPriceTable())

	require.Len(t, got.Materials, 1)
	assert.Equal(t, MaterialLineItem{Name: "Projecteur", Quantity: 2}, got.Materials[0])
	assert.Zero(t, got.TotalPrice)
}

func TestCalculateQuote_LineTotals(t *testing.T) {
	rooms := NewCatalog(NewSequenceGenerator("q")).DefaultRooms()

	got := CalculateQuote(rooms, DefaultPriceTable())

	var sum float64
	for _, m := range got.Materials {
		assert.Positive(t, m.Quantity)
		assert.InDelta(t, m.UnitPrice*float64(m.Quantity), m.TotalPrice, 1e-9)
		sum += m.TotalPrice
	}
	assert.InDelta(t, sum, got.TotalPrice, 1e-9)
	assert.IsIncreasing(t, materialNames(got))
}

func TestCalculateQuote_DefaultRooms(t *testing.T) {
	rooms := NewCatalog(NewSequenceGenerator("q")).DefaultRooms()

	got := quantities(CalculateQuote(rooms, DefaultPriceTable()))

	// Cuisine 6 + 4 specialized, Salon 5, SdB 2, Chambre 3
	assert.Equal(t, 20, got[MaterialOutlet])
	// 2+2+1+1+2 switches
	assert.Equal(t, 8, got[MaterialSwitch])
	assert.Equal(t, 5, got["Point lumineux DCL"])
	// switches 8, specialized 4, single-outlet blocks 2+3+2+3
	assert.Equal(t, 22, got[MountingBoxMaterial(1)])
	assert.Equal(t, 3, got[MountingBoxMaterial(2)])
}

func TestCalculateQuote_OrderIndependent(t *testing.T) {
	ed := NewEditor(NewSequenceGenerator("p"))
	rooms := ed.Catalog().DefaultRooms()
	rooms, _ = ed.Apply(rooms, Command{Op: OpAddRoom, Label: "Buanderie"})
	rooms, _ = ed.Apply(rooms, Command{Op: OpAddRoom, Label: "Terrasse"})
	rooms[1] = UpdateOutletBlock(rooms[1], rooms[1].Equipment.OutletBlocks.All()[0].ID,
		OutletBlockPatch{RJ45: intPtr(1), TV: intPtr(1)})

	prices := DefaultPriceTable()
	want := CalculateQuote(rooms, prices)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		shuffled := make([]Room, len(rooms))
		for j, k := range rng.Perm(len(rooms)) {
			shuffled[j] = shuffleEquipment(rooms[k], rng)
		}
		got := CalculateQuote(shuffled, prices)
		assert.Equal(t, quantities(want), quantities(got))
		assert.Equal(t, want.TotalPrice, got.TotalPrice)
		assert.Equal(t, want, got)
	}
}

func TestCalculateQuote_NoRooms(t *testing.T) {
	got := CalculateQuote(nil, DefaultPriceTable())
	assert.Empty(t, got.Materials)
	assert.Zero(t, got.TotalPrice)
}

func TestQuoteResult_Quantity(t *testing.T) {
	q := QuoteResult{Materials: []MaterialLineItem{{Name: "Prise TV", Quantity: 2}}}
	assert.Equal(t, 2, q.Quantity("Prise TV"))
	assert.Equal(t, 0, q.Quantity("Prise RJ45"))
}

func TestPriceTable_WithOverrides(t *testing.T) {
	base := DefaultPriceTable()
	merged := base.WithOverrides(map[string]float64{MaterialOutlet: 4, "Projecteur": 30})

	assert.Equal(t, 4.0, merged.Price(MaterialOutlet))
	assert.Equal(t, 30.0, merged.Price("Projecteur"))
	assert.Equal(t, 3.42, base.Price(MaterialOutlet))
	assert.True(t, math.Abs(merged.Price(MaterialTV)-8.03) < 1e-9)
}

func materialNames(q QuoteResult) []string {
	names := make([]string, 0, len(q.Materials))
	for _, m := range q.Materials {
		names = append(names, m.Name)
	}
	return names
}

func shuffleEquipment(r Room, rng *rand.Rand) Room {
	lights := r.Equipment.Lighting.All()
	rng.Shuffle(len(lights), func(i, j int) { lights[i], lights[j] = lights[j], lights[i] })
	blocks := r.Equipment.OutletBlocks.All()
	rng.Shuffle(len(blocks), func(i, j int) { blocks[i], blocks[j] = blocks[j], blocks[i] })
	specialized := append([]SpecializedOutlet(nil), r.Equipment.SpecializedOutlets...)
	rng.Shuffle(len(specialized), func(i, j int) { specialized[i], specialized[j] = specialized[j], specialized[i] })

	r.Equipment = Equipment{
		Lighting:           NewCollection(lights...),
		OutletBlocks:       NewCollection(blocks...),
		SpecializedOutlets: specialized,
	}
	return r
}
