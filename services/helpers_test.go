package services

import (
	"bytes"

	"elecquote/equipment"
)

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

// sampleForm returns a complete, valid intake form holding the five default rooms.
func sampleForm() IntakeForm {
	catalog := equipment.NewCatalog(equipment.NewSequenceGenerator("t"))
	return IntakeForm{
		TypeOfWork:      "Rénovation",
		LodgingType:     "Maison",
		Department:      "32",
		SurfaceArea:     "85,5",
		BreakerLocation: "inside",
		HighTensionLine: "souterraine",
		PanelType:       "encastre",
		AluminumJoinery: "non",
		VMCNeeded:       "oui",
		Rooms:           catalog.DefaultRooms(),
		Heating:         HeatingTypes{Radiators: true, HeatPump: true},
		FirstName:       "Hélène",
		LastName:        "Dupont",
		Email:           "helene.dupont@example.fr",
		Phone:           "06 01 36 57 35",
	}
}
