package equipment

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// roomTemplate is the default equipment bundle of a kind of room.
type roomTemplate struct {
	fixture     LightingType
	switches    int
	blocks      []int // standard outlets of each simple block
	specialized []SpecializedOutlet
}

type templateRule struct {
	matches  func(normalized string) bool
	template roomTemplate
}

func named(name string) func(string) bool {
	return func(s string) bool { return s == name }
}

func containing(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

var exteriorWords = []string{"garage", "terrasse", "exterieur", "extérieur"}

// templateRules are evaluated in order, first match wins.
var templateRules = []templateRule{
	{named("chambre"), roomTemplate{fixture: LightingDCL, switches: 2, blocks: []int{1, 1, 1}}},
	{named("salon"), roomTemplate{fixture: LightingDCL, switches: 2, blocks: []int{1, 1, 1, 2}}},
	{named("cuisine"), roomTemplate{
		fixture:     LightingDCL,
		switches:    2,
		blocks:      []int{2, 2, 1, 1},
		specialized: []SpecializedOutlet{OutletHood, OutletOven, OutletDishwasher, OutletHob},
	}},
	{named("salle de bain"), roomTemplate{fixture: LightingDCL, switches: 1, blocks: []int{1, 1}}},
	{named("wc"), roomTemplate{fixture: LightingDCL, switches: 1}},
	{containing("buanderie"), roomTemplate{
		fixture:     LightingDCL,
		switches:    1,
		blocks:      []int{1, 1},
		specialized: []SpecializedOutlet{OutletWasher, OutletWaterHeater},
	}},
	{containing(exteriorWords...), roomTemplate{fixture: LightingSupply, switches: 1}},
}

var fallbackTemplate = roomTemplate{fixture: LightingDCL, switches: 2, blocks: []int{1}}

// NormalizeLabel is the form room labels are compared in: trimmed, NFC
// composed and lower-cased.
func NormalizeLabel(label string) string {
	composed := norm.NFC.String(strings.TrimSpace(label))
	return cases.Lower(language.French).String(composed)
}

func templateFor(label string) roomTemplate {
	normalized := NormalizeLabel(label)
	for _, rule := range templateRules {
		if rule.matches(normalized) {
			return rule.template
		}
	}
	return fallbackTemplate
}

// Catalog builds rooms from their label.
type Catalog struct {
	ids IDGenerator
}

// NewCatalog returns a catalog drawing entity ids from ids.
func NewCatalog(ids IDGenerator) *Catalog {
	return &Catalog{ids: ids}
}

// Instantiate creates a room named after the trimmed label and fills it with
// the default equipment of the first matching template. It accepts any label,
// blank included.
func (c *Catalog) Instantiate(label string) Room {
	name := strings.TrimSpace(label)
	tpl := templateFor(name)

	fixture := LightingFixture{
		ID:         c.ids.NextID(),
		Type:       tpl.fixture,
		Quantity:   1,
		Switches:   tpl.switches,
		Detectors:  0,
		CustomName: fixtureName(tpl.fixture, name, 1),
	}

	blocks := make([]OutletBlock, 0, len(tpl.blocks))
	for _, outlets := range tpl.blocks {
		blocks = append(blocks, OutletBlock{
			ID:      c.ids.NextID(),
			Type:    BlockSimple,
			Outlets: outlets,
		})
	}

	specialized := make([]SpecializedOutlet, len(tpl.specialized))
	copy(specialized, tpl.specialized)

	return Room{
		ID:             c.ids.NextID(),
		Name:           name,
		DefaultFixture: tpl.fixture,
		Equipment: Equipment{
			Lighting:           NewCollection(fixture),
			OutletBlocks:       NewCollection(blocks...),
			SpecializedOutlets: specialized,
		},
	}
}

// DefaultRooms returns the rooms a new intake form starts with.
func (c *Catalog) DefaultRooms() []Room {
	labels := []string{"Cuisine", "Salon", "Salle de bain", "WC", "Chambre"}
	rooms := make([]Room, 0, len(labels))
	for _, label := range labels {
		rooms = append(rooms, c.Instantiate(label))
	}
	return rooms
}

func fixtureName(t LightingType, room string, seq int) string {
	return fmt.Sprintf("%s-%s %d", t, room, seq)
}

// UniqueLabel returns label when no room bears it yet (case-insensitively).
// Otherwise it returns "label N+1", N being the number of rooms named label or
// a numbered variant of it, skipping numbers still in use after deletions.
func UniqueLabel(rooms []Room, label string) string {
	wanted := NormalizeLabel(label)
	taken := make(map[string]bool, len(rooms))
	exact, count := false, 0
	for _, r := range rooms {
		name := NormalizeLabel(r.Name)
		taken[name] = true
		switch {
		case name == wanted:
			exact = true
			count++
		case isNumberedVariant(name, wanted):
			count++
		}
	}
	if !exact {
		return label
	}
	n := count + 1
	for taken[NormalizeLabel(fmt.Sprintf("%s %d", label, n))] {
		n++
	}
	return fmt.Sprintf("%s %d", label, n)
}

// isNumberedVariant reports whether name is base followed by " <digits>".
func isNumberedVariant(name, base string) bool {
	suffix, ok := strings.CutPrefix(name, base+" ")
	if !ok || suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RoomKind is an entry of the "add a room" menu.
type RoomKind struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

const (
	KindCustom         = "autre"
	KindCustomExterior = "autre-exterieur"
)

// RoomKinds is the "add a room" menu in display order.
var RoomKinds = []RoomKind{
	{"entrée", "Entrée"},
	{"salle à manger", "Salle à manger"},
	{"bureau", "Bureau"},
	{"chambre", "Chambre"},
	{"buanderie", "Buanderie"},
	{"couloir", "Couloir"},
	{"escalier", "Escalier"},
	{"garage", "Garage"},
	{"sdb", "Salle de bain"},
	{"WC", "WC"},
	{"extérieur entrée", "Extérieur entrée"},
	{"exterieur", "Extérieur"},
	{"terrasse", "Terrasse"},
	{KindCustom, "Autre (libre)"},
	{KindCustomExterior, "Autre extérieur (libre)"},
	{"salon", "Salon"},
	{"cuisine", "Cuisine"},
}

// ResolveRoomLabel turns a menu value (plus the free text typed for the
// custom kinds) into the label of the room to create. Values missing from
// the menu are used as the label.
func ResolveRoomLabel(kind, custom string) string {
	custom = strings.TrimSpace(custom)
	switch kind {
	case KindCustom:
		if custom != "" {
			return custom
		}
		return "Autre"
	case KindCustomExterior:
		if custom != "" {
			return "Extérieur : " + custom
		}
		return "Autre extérieur"
	}
	for _, k := range RoomKinds {
		if k.Value == kind {
			return k.Label
		}
	}
	return kind
}

// IsExterior reports whether the room name designates an outdoor space.
func IsExterior(roomName string) bool {
	return containing(exteriorWords...)(NormalizeLabel(roomName))
}

// LightingOptions returns the fixtures that can be picked for the room.
func LightingOptions(roomName string) []LightingType {
	src := InteriorLightingOptions
	if IsExterior(roomName) {
		src = ExteriorLightingOptions
	}
	out := make([]LightingType, len(src))
	copy(out, src)
	return out
}

// AcceptsSpecializedOutlets is false for toilets and outdoor spaces, where no
// appliance circuit is offered.
func AcceptsSpecializedOutlets(roomName string) bool {
	n := NormalizeLabel(roomName)
	return !strings.Contains(n, "wc") && !IsExterior(n)
}
