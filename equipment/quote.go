package equipment

import "sort"

// MaterialLineItem is one priced line of a quote.
type MaterialLineItem struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// QuoteResult is the itemized material quote of a set of rooms.
type QuoteResult struct {
	Materials  []MaterialLineItem `json:"materials"`
	TotalPrice float64            `json:"total_price"`
}

// bill accumulates material quantities.
type bill map[string]int

func (b bill) add(material string, qty int) {
	if qty > 0 {
		b[material] += qty
	}
}

// addMounting adds the box and finishing plate for one mounting point of the
// given number of gangs. Empty mounting points need nothing.
func (b bill) addMounting(gangs int) {
	if gangs < 1 {
		return
	}
	b.add(MountingBoxMaterial(gangs), 1)
	b.add(FinishingPlateMaterial(gangs), 1)
}

func (b bill) addRoom(room Room) {
	for _, light := range room.Equipment.Lighting.All() {
		b.add(string(light.Type), light.Quantity)
		b.add(MaterialSwitch, light.Switches)
		// each switch sits in its own single-gang box
		for i := 0; i < light.Switches; i++ {
			b.addMounting(1)
		}
	}

	for _, block := range room.Equipment.OutletBlocks.All() {
		b.add(MaterialOutlet, block.Outlets)
		b.add(MaterialRJ45, block.RJ45)
		b.add(MaterialTV, block.TV)
		b.addMounting(block.Modules())
	}

	for range room.Equipment.SpecializedOutlets {
		b.add(MaterialOutlet, 1)
		b.addMounting(1)
	}
}

// CalculateQuote lists and prices every material needed to equip rooms.
// Materials missing from prices cost 0. Line items are sorted by name, so the
// result does not depend on the order of rooms or of their equipment.
func CalculateQuote(rooms []Room, prices PriceTable) QuoteResult {
	b := make(bill)
	for _, room := range rooms {
		b.addRoom(room)
	}

	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)

	result := QuoteResult{Materials: make([]MaterialLineItem, 0, len(names))}
	for _, name := range names {
		qty := b[name]
		unit := prices.Price(name)
		line := MaterialLineItem{
			Name:       name,
			Quantity:   qty,
			UnitPrice:  unit,
			TotalPrice: unit * float64(qty),
		}
		result.Materials = append(result.Materials, line)
		result.TotalPrice += line.TotalPrice
	}
	return result
}

// Quantity returns the quantity of a material in the quote, 0 when absent.
func (q QuoteResult) Quantity(material string) int {
	for _, m := range q.Materials {
		if m.Name == material {
			return m.Quantity
		}
	}
	return 0
}
