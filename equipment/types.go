// Package equipment holds the room equipment model, the default room
// templates, the outlet block capacity rule and the material quotation engine.
//
// Everything in this package is pure: functions take values and return new
// values, the only shared state being the injected IDGenerator.
package equipment

// LightingType is the commercial name of a lighting fixture. It doubles as the
// material name used when pricing the fixture.
type LightingType string

const (
	LightingDCL              LightingType = "Point lumineux DCL"
	LightingSpotsInsulated   LightingType = "Spots recouvrable isolant"
	LightingSpots            LightingType = "Spots"
	LightingShowerSpot       LightingType = "Spot douche"
	LightingWallDCL          LightingType = "DCL applique"
	LightingSupply           LightingType = "Alimentation éclairage"
	LightingSimpleSupply     LightingType = "Alimentation simple"
	LightingFloodlight       LightingType = "Projecteur"
	LightingFloodlightMotion LightingType = "Projecteur avec détecteur"
)

// InteriorLightingOptions lists the fixtures offered for indoor rooms.
var InteriorLightingOptions = []LightingType{
	LightingDCL,
	LightingSpotsInsulated,
	LightingSpots,
	LightingShowerSpot,
	LightingWallDCL,
	LightingSupply,
}

// ExteriorLightingOptions lists the fixtures offered for outdoor rooms.
var ExteriorLightingOptions = []LightingType{
	LightingSimpleSupply,
	LightingFloodlight,
	LightingFloodlightMotion,
}

// OutletBlockType describes the physical frame of an outlet block.
type OutletBlockType string

const (
	BlockSimple    OutletBlockType = "simple"
	BlockDouble    OutletBlockType = "double"
	BlockTriple    OutletBlockType = "triple"
	BlockQuadruple OutletBlockType = "quadruple"
)

// SpecializedOutlet is a dedicated-circuit socket for a named appliance.
type SpecializedOutlet string

const (
	OutletHood        SpecializedOutlet = "Hotte"
	OutletOven        SpecializedOutlet = "Four"
	OutletDishwasher  SpecializedOutlet = "Lave-vaisselle"
	OutletWasher      SpecializedOutlet = "Lave-linge"
	OutletDryer       SpecializedOutlet = "Sèche-linge"
	OutletFreezer     SpecializedOutlet = "Congélateur"
	OutletHob         SpecializedOutlet = "Plaque de cuisson"
	OutletWaterHeater SpecializedOutlet = "Chauffe-eau"
)

// SpecializedOutlets is the closed set of specialized outlets, in display order.
var SpecializedOutlets = []SpecializedOutlet{
	OutletHood,
	OutletOven,
	OutletDishwasher,
	OutletWasher,
	OutletDryer,
	OutletFreezer,
	OutletHob,
	OutletWaterHeater,
}

// Valid reports whether o belongs to the closed set.
func (o SpecializedOutlet) Valid() bool {
	for _, known := range SpecializedOutlets {
		if o == known {
			return true
		}
	}
	return false
}

// LightingFixture is one lighting point of a room.
type LightingFixture struct {
	ID         string       `json:"id"`
	Type       LightingType `json:"type"`
	Quantity   int          `json:"quantity"`
	Switches   int          `json:"switches"`
	Detectors  int          `json:"detectors"`
	CustomName string       `json:"custom_name,omitempty"`
}

func (f LightingFixture) entityID() string { return f.ID }

// OutletBlock is a mounting point grouping standard, RJ45 and TV sockets.
// Outlets+RJ45+TV never exceeds MaxBlockModules.
type OutletBlock struct {
	ID      string          `json:"id"`
	Type    OutletBlockType `json:"type"`
	Outlets int             `json:"outlets"`
	RJ45    int             `json:"rj45"`
	TV      int             `json:"tv"`
}

func (b OutletBlock) entityID() string { return b.ID }

// Modules returns the number of gangs the block occupies.
func (b OutletBlock) Modules() int {
	return b.Outlets + b.RJ45 + b.TV
}

// Equipment is everything installed in a room.
type Equipment struct {
	Lighting           Collection[LightingFixture] `json:"lighting"`
	OutletBlocks       Collection[OutletBlock]     `json:"outlet_blocks"`
	SpecializedOutlets []SpecializedOutlet         `json:"specialized_outlets"`
}

// Room is a named space of the dwelling. DefaultFixture is fixed by the
// template rule at creation time and reused when lighting is added later.
type Room struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	DefaultFixture LightingType `json:"default_fixture,omitempty"`
	Equipment      Equipment    `json:"equipment"`
}

// HasSpecializedOutlet reports whether o is already present in the room.
func (r Room) HasSpecializedOutlet(o SpecializedOutlet) bool {
	for _, existing := range r.Equipment.SpecializedOutlets {
		if existing == o {
			return true
		}
	}
	return false
}

// defaultFixture falls back to the DCL point for rooms decoded without one.
func (r Room) defaultFixture() LightingType {
	if r.DefaultFixture == "" {
		return LightingDCL
	}
	return r.DefaultFixture
}
