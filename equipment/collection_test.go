package equipment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Persistent(t *testing.T) {
	a := NewCollection(OutletBlock{ID: "1"}, OutletBlock{ID: "2"})
	b := a.With(OutletBlock{ID: "3"})
	c := b.Replace("2", func(ob OutletBlock) OutletBlock {
		ob.TV = 1
		return ob
	})
	d := c.Without("1")

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 3, b.Len())
	got, _ := b.Get("2")
	assert.Equal(t, 0, got.TV)
	got, _ = c.Get("2")
	assert.Equal(t, 1, got.TV)
	assert.False(t, d.Has("1"))
	assert.Equal(t, []OutletBlock{{ID: "2", TV: 1}, {ID: "3"}}, d.All())
}

func TestCollection_AllReturnsCopy(t *testing.T) {
	c := NewCollection(OutletBlock{ID: "1", Outlets: 1})
	items := c.All()
	items[0].Outlets = 4
	got, _ := c.Get("1")
	assert.Equal(t, 1, got.Outlets)
}

func TestCollection_ZeroValue(t *testing.T) {
	var c Collection[LightingFixture]
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("x")
	assert.False(t, ok)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	c = c.With(LightingFixture{ID: "x"})
	assert.True(t, c.Has("x"))
}

func TestCollection_UnmarshalJSON(t *testing.T) {
	var c Collection[OutletBlock]
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"a","outlets":2},{"id":"b","tv":1}]`), &c))
	got, ok := c.Get("b")
	require.True(t, ok)
	assert.Equal(t, 1, got.TV)

	assert.Error(t, json.Unmarshal([]byte(`{"id":"a"}`), &c))
}
