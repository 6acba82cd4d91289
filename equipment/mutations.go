package equipment

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRoomNotFound             = errors.New("room not found")
	ErrBlankRoomLabel           = errors.New("room label is blank")
	ErrUnknownCommand           = errors.New("unknown command")
	ErrUnknownSpecializedOutlet = errors.New("unknown specialized outlet")
)

// LightingPatch carries the fields of a fixture to overwrite; nil fields are
// left alone. Values are not range-checked: quantity and switch counts are
// floored by the caller.
type LightingPatch struct {
	Type       *LightingType `json:"type,omitempty"`
	Quantity   *int          `json:"quantity,omitempty"`
	Switches   *int          `json:"switches,omitempty"`
	Detectors  *int          `json:"detectors,omitempty"`
	CustomName *string       `json:"custom_name,omitempty"`
}

func (p LightingPatch) apply(f LightingFixture) LightingFixture {
	if p.Type != nil {
		f.Type = *p.Type
	}
	if p.Quantity != nil {
		f.Quantity = *p.Quantity
	}
	if p.Switches != nil {
		f.Switches = *p.Switches
	}
	if p.Detectors != nil {
		f.Detectors = *p.Detectors
	}
	if p.CustomName != nil {
		f.CustomName = *p.CustomName
	}
	return f
}

// OutletBlockPatch carries the fields of an outlet block to overwrite. Counts
// go through ApplyUpdate one at a time, outlets first, then RJ45, then TV.
type OutletBlockPatch struct {
	Type    *OutletBlockType `json:"type,omitempty"`
	Outlets *int             `json:"outlets,omitempty"`
	RJ45    *int             `json:"rj45,omitempty"`
	TV      *int             `json:"tv,omitempty"`
}

func (p OutletBlockPatch) apply(b OutletBlock) OutletBlock {
	if p.Type != nil {
		b.Type = *p.Type
	}
	if p.Outlets != nil {
		b = ApplyUpdate(b, FieldOutlets, *p.Outlets)
	}
	if p.RJ45 != nil {
		b = ApplyUpdate(b, FieldRJ45, *p.RJ45)
	}
	if p.TV != nil {
		b = ApplyUpdate(b, FieldTV, *p.TV)
	}
	return b
}

// Editor creates and edits room equipment. It never modifies the rooms it is
// given; every operation returns the next snapshot.
type Editor struct {
	ids     IDGenerator
	catalog *Catalog
}

// NewEditor returns an editor and its catalog sharing the same id generator.
func NewEditor(ids IDGenerator) *Editor {
	return &Editor{ids: ids, catalog: NewCatalog(ids)}
}

// Catalog returns the template catalog used for new rooms.
func (e *Editor) Catalog() *Catalog {
	return e.catalog
}

// AddLighting appends a fixture of the room's default type with one point and
// one switch.
func (e *Editor) AddLighting(room Room) Room {
	t := room.defaultFixture()
	room.Equipment.Lighting = room.Equipment.Lighting.With(LightingFixture{
		ID:         e.ids.NextID(),
		Type:       t,
		Quantity:   1,
		Switches:   1,
		Detectors:  0,
		CustomName: fixtureName(t, room.Name, room.Equipment.Lighting.Len()+1),
	})
	return room
}

// UpdateLighting merges patch into the fixture with the given id.
func UpdateLighting(room Room, id string, patch LightingPatch) Room {
	room.Equipment.Lighting = room.Equipment.Lighting.Replace(id, patch.apply)
	return room
}

// RemoveLighting drops the fixture with the given id.
func RemoveLighting(room Room, id string) Room {
	room.Equipment.Lighting = room.Equipment.Lighting.Without(id)
	return room
}

// AddOutletBlock appends an empty simple block.
func (e *Editor) AddOutletBlock(room Room) Room {
	room.Equipment.OutletBlocks = room.Equipment.OutletBlocks.With(OutletBlock{
		ID:   e.ids.NextID(),
		Type: BlockSimple,
	})
	return room
}

// UpdateOutletBlock applies patch to the block with the given id, enforcing
// the capacity rule on every count it changes.
func UpdateOutletBlock(room Room, id string, patch OutletBlockPatch) Room {
	room.Equipment.OutletBlocks = room.Equipment.OutletBlocks.Replace(id, patch.apply)
	return room
}

// RemoveOutletBlock drops the block with the given id.
func RemoveOutletBlock(room Room, id string) Room {
	room.Equipment.OutletBlocks = room.Equipment.OutletBlocks.Without(id)
	return room
}

// ToggleSpecializedOutlet adds outlet to the room, or removes it when present.
func ToggleSpecializedOutlet(room Room, outlet SpecializedOutlet) Room {
	current := room.Equipment.SpecializedOutlets
	next := make([]SpecializedOutlet, 0, len(current)+1)
	for _, o := range current {
		if o != outlet {
			next = append(next, o)
		}
	}
	if len(next) == len(current) {
		next = append(next, outlet)
	}
	room.Equipment.SpecializedOutlets = next
	return room
}

// Op names a room-list command.
type Op string

const (
	OpAddRoom                 Op = "add_room"
	OpRemoveRoom              Op = "remove_room"
	OpMoveRoomUp              Op = "move_room_up"
	OpMoveRoomDown            Op = "move_room_down"
	OpAddLighting             Op = "add_lighting"
	OpUpdateLighting          Op = "update_lighting"
	OpRemoveLighting          Op = "remove_lighting"
	OpAddOutletBlock          Op = "add_outlet_block"
	OpUpdateOutletBlock       Op = "update_outlet_block"
	OpRemoveOutletBlock       Op = "remove_outlet_block"
	OpToggleSpecializedOutlet Op = "toggle_specialized_outlet"
)

// Command is one edit of the room list. Which fields are read depends on Op.
type Command struct {
	Op          Op                `json:"op"`
	RoomID      string            `json:"room_id,omitempty"`
	EntityID    string            `json:"entity_id,omitempty"`
	Kind        string            `json:"kind,omitempty"`
	Label       string            `json:"label,omitempty"`
	Lighting    *LightingPatch    `json:"lighting,omitempty"`
	OutletBlock *OutletBlockPatch `json:"outlet_block,omitempty"`
	Outlet      SpecializedOutlet `json:"outlet,omitempty"`
}

// Apply runs cmd against rooms and returns the resulting list.
func (e *Editor) Apply(rooms []Room, cmd Command) ([]Room, error) {
	switch cmd.Op {
	case OpAddRoom:
		return e.addRoom(rooms, cmd)
	case OpRemoveRoom:
		return removeRoom(rooms, cmd.RoomID)
	case OpMoveRoomUp:
		return moveRoom(rooms, cmd.RoomID, -1)
	case OpMoveRoomDown:
		return moveRoom(rooms, cmd.RoomID, 1)
	case OpAddLighting:
		return updateRoom(rooms, cmd.RoomID, e.AddLighting)
	case OpUpdateLighting:
		var patch LightingPatch
		if cmd.Lighting != nil {
			patch = *cmd.Lighting
		}
		return updateRoom(rooms, cmd.RoomID, func(r Room) Room {
			return UpdateLighting(r, cmd.EntityID, patch)
		})
	case OpRemoveLighting:
		return updateRoom(rooms, cmd.RoomID, func(r Room) Room {
			return RemoveLighting(r, cmd.EntityID)
		})
	case OpAddOutletBlock:
		return updateRoom(rooms, cmd.RoomID, e.AddOutletBlock)
	case OpUpdateOutletBlock:
		var patch OutletBlockPatch
		if cmd.OutletBlock != nil {
			patch = *cmd.OutletBlock
		}
		return updateRoom(rooms, cmd.RoomID, func(r Room) Room {
			return UpdateOutletBlock(r, cmd.EntityID, patch)
		})
	case OpRemoveOutletBlock:
		return updateRoom(rooms, cmd.RoomID, func(r Room) Room {
			return RemoveOutletBlock(r, cmd.EntityID)
		})
	case OpToggleSpecializedOutlet:
		if !cmd.Outlet.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSpecializedOutlet, cmd.Outlet)
		}
		return updateRoom(rooms, cmd.RoomID, func(r Room) Room {
			return ToggleSpecializedOutlet(r, cmd.Outlet)
		})
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
}

func (e *Editor) addRoom(rooms []Room, cmd Command) ([]Room, error) {
	label := cmd.Label
	if cmd.Kind != "" {
		label = ResolveRoomLabel(cmd.Kind, cmd.Label)
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, ErrBlankRoomLabel
	}

	room := e.catalog.Instantiate(UniqueLabel(rooms, label))
	out := make([]Room, len(rooms), len(rooms)+1)
	copy(out, rooms)
	return append(out, room), nil
}

func indexOfRoom(rooms []Room, id string) int {
	for i, r := range rooms {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func updateRoom(rooms []Room, id string, fn func(Room) Room) ([]Room, error) {
	i := indexOfRoom(rooms, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	out := make([]Room, len(rooms))
	copy(out, rooms)
	out[i] = fn(out[i])
	return out, nil
}

func removeRoom(rooms []Room, id string) ([]Room, error) {
	i := indexOfRoom(rooms, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	out := make([]Room, 0, len(rooms)-1)
	out = append(out, rooms[:i]...)
	return append(out, rooms[i+1:]...), nil
}

// moveRoom swaps the room with its neighbour; moving past either end is a no-op.
func moveRoom(rooms []Room, id string, delta int) ([]Room, error) {
	i := indexOfRoom(rooms, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	out := make([]Room, len(rooms))
	copy(out, rooms)
	j := i + delta
	if j < 0 || j >= len(out) {
		return out, nil
	}
	out[i], out[j] = out[j], out[i]
	return out, nil
}
