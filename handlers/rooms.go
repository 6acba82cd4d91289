package handlers

import (
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/equipment"
	"elecquote/services"
)

// roomsBody is the room list exchanged by the room endpoints.
type roomsBody struct {
	Rooms []equipment.Room `json:"rooms"`
}

type roomCommandRequest struct {
	Rooms   []equipment.Room  `json:"rooms"`
	Command equipment.Command `json:"command"`
}

// HandleDefaultRooms returns a freshly instantiated default room list.
func HandleDefaultRooms(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, roomsBody{Rooms: d.Editor.Catalog().DefaultRooms()})
	}
}

// HandleRoomCommand applies one edit to the posted room list and returns the
// new list. The server keeps no room state between calls.
func HandleRoomCommand(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req roomCommandRequest
		if err := e.BindBody(&req); err != nil {
			return respondError(e, http.StatusBadRequest, "invalid request body")
		}
		if req.Rooms == nil {
			req.Rooms = []equipment.Room{}
		}

		rooms, err := d.Editor.Apply(req.Rooms, req.Command)
		if err != nil {
			d.logger(e).Info("room command rejected",
				zap.String("op", string(req.Command.Op)),
				zap.String("room_id", req.Command.RoomID),
				zap.Error(err),
			)
			if errors.Is(err, equipment.ErrRoomNotFound) {
				return respondError(e, http.StatusNotFound, err.Error())
			}
			return respondError(e, http.StatusBadRequest, err.Error())
		}

		return e.JSON(http.StatusOK, roomsBody{Rooms: rooms})
	}
}

type lightingOptionsResponse struct {
	Room                      string                   `json:"room"`
	Exterior                  bool                     `json:"exterior"`
	Options                   []equipment.LightingType `json:"options"`
	AcceptsSpecializedOutlets bool                     `json:"accepts_specialized_outlets"`
}

// HandleLightingOptions answers which fixtures (and whether specialized
// outlets) can be offered for the room named by ?room=.
func HandleLightingOptions(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		room := e.Request.URL.Query().Get("room")
		return e.JSON(http.StatusOK, lightingOptionsResponse{
			Room:                      room,
			Exterior:                  equipment.IsExterior(room),
			Options:                   equipment.LightingOptions(room),
			AcceptsSpecializedOutlets: equipment.AcceptsSpecializedOutlets(room),
		})
	}
}

// HandleOptions returns every dropdown list the intake wizard needs.
func HandleOptions(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, services.AllFormOptions())
	}
}
