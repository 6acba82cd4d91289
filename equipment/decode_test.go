package equipment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oversizedRoom = `{
	"id": "r1",
	"name": "Cuisine",
	"equipment": {
		"lighting": [{"id": "l1", "type": "Point lumineux DCL", "quantity": -3, "switches": 1, "detectors": -1}],
		"outlet_blocks": [{"id": "b1", "type": "quadruple", "outlets": 9, "rj45": 0, "tv": 0}],
		"specialized_outlets": ["Four", "Four", "Hotte"]
	}
}`

func TestRoomDecode_Normalizes(t *testing.T) {
	var room Room
	require.NoError(t, json.Unmarshal([]byte(oversizedRoom), &room))

	block, ok := room.Equipment.OutletBlocks.Get("b1")
	require.True(t, ok)
	assert.Equal(t, 4, block.Outlets)
	assert.Equal(t, MaxBlockModules, block.Modules())

	light, ok := room.Equipment.Lighting.Get("l1")
	require.True(t, ok)
	assert.Equal(t, 0, light.Quantity)
	assert.Equal(t, 1, light.Switches)
	assert.Equal(t, 0, light.Detectors)

	assert.Equal(t, []SpecializedOutlet{OutletOven, OutletHood}, room.Equipment.SpecializedOutlets)
}

func TestRoomDecode_CapacityHoldsAfterUpdate(t *testing.T) {
	var room Room
	require.NoError(t, json.Unmarshal([]byte(oversizedRoom), &room))

	rj45 := 0
	updated := UpdateOutletBlock(room, "b1", OutletBlockPatch{RJ45: &rj45})
	block, _ := updated.Equipment.OutletBlocks.Get("b1")
	assert.LessOrEqual(t, block.Modules(), MaxBlockModules)
}

func TestRoomDecode_QuoteCountsRepairedSnapshot(t *testing.T) {
	var room Room
	require.NoError(t, json.Unmarshal([]byte(oversizedRoom), &room))

	quote := CalculateQuote([]Room{room}, DefaultPriceTable())
	// 4 in the block + one per distinct specialized outlet
	assert.Equal(t, 6, quote.Quantity(MaterialOutlet))
	assert.Equal(t, 1, quote.Quantity(MountingBoxMaterial(4)))
	assert.Equal(t, 0, quote.Quantity(MountingBoxMaterial(9)))
}

func TestRoomDecode_UnknownSpecializedOutlet(t *testing.T) {
	var room Room
	err := json.Unmarshal([]byte(`{"id":"r1","name":"Cuisine","equipment":{"specialized_outlets":["Jacuzzi"]}}`), &room)
	assert.ErrorIs(t, err, ErrUnknownSpecializedOutlet)
}

func TestRoomDecode_RoundTrip(t *testing.T) {
	rooms := NewCatalog(NewSequenceGenerator("rt-")).DefaultRooms()
	data, err := json.Marshal(rooms)
	require.NoError(t, err)

	var decoded []Room
	require.NoError(t, json.Unmarshal(data, &decoded))
	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))
}
