package equipment

import "fmt"

// Material names produced by the quotation engine besides lighting types.
const (
	MaterialSwitch = "Interrupteur va-et-vient"
	MaterialOutlet = "Prise de courant"
	MaterialRJ45   = "Prise RJ45"
	MaterialTV     = "Prise TV"
)

// MountingBoxMaterial is the flush box sized for the given number of gangs.
func MountingBoxMaterial(gangs int) string {
	return fmt.Sprintf("Boite d'encastrement %d", gangs)
}

// FinishingPlateMaterial is the cover plate sized for the given number of gangs.
func FinishingPlateMaterial(gangs int) string {
	return fmt.Sprintf("Plaque de finition %d", gangs)
}

// PriceTable maps a material name to its unit price in euros.
type PriceTable map[string]float64

// Price returns the unit price of a material; unknown materials cost nothing.
func (t PriceTable) Price(material string) float64 {
	return t[material]
}

// WithOverrides returns a new table holding t's prices replaced or completed
// by those in overrides.
func (t PriceTable) WithOverrides(overrides map[string]float64) PriceTable {
	out := make(PriceTable, len(t)+len(overrides))
	for name, price := range t {
		out[name] = price
	}
	for name, price := range overrides {
		out[name] = price
	}
	return out
}

// DefaultPriceTable returns the catalogue prices. A fresh map is returned on
// every call so callers may modify it.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		// lighting
		"Point lumineux DCL":                9.55,
		"Point lumineux applique DCL":       6.08,
		"Spots":                             7.29,
		"Spots recouvrable tout isolant":    18.81,
		"Spot douche":                       25.06,
		"Projecteur étanche":                24.30,
		"Projecteur étanche avec détecteur": 40.37,

		// switches
		MaterialSwitch:         3.78,
		"Interrupteur étanche": 8.37,
		"Bouton poussoir":      5.33,

		// sockets
		MaterialOutlet:  3.42,
		MaterialRJ45:    15.53,
		MaterialTV:      8.03,
		"Prise étanche": 8.78,

		FinishingPlateMaterial(1): 1.35,
		FinishingPlateMaterial(2): 2.57,
		FinishingPlateMaterial(3): 4.32,
		FinishingPlateMaterial(4): 5.51,

		MountingBoxMaterial(1): 0.84,
		MountingBoxMaterial(2): 4.31,
		MountingBoxMaterial(3): 6.01,
		MountingBoxMaterial(4): 11.41,
	}
}
