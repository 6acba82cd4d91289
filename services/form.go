package services

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pocketbase/pocketbase/tools/security"

	"elecquote/equipment"
)

// Validation regex patterns
var (
	frPhonePattern    = regexp.MustCompile(`^(?:\+33|0)[1-9][0-9]{8}$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	departmentPattern = regexp.MustCompile(`^(?:0[1-9]|1[0-9]|2[1-9AB]|[3-8][0-9]|9[0-5]|97[1-46])$`)
	surfacePattern    = regexp.MustCompile(`^[0-9]+(?:[.,][0-9]+)?$`)
)

// FormPasswordLength is the length of the access password handed out on submission.
const FormPasswordLength = 12

const formPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewFormPassword returns a random alphanumeric password from crypto/rand.
func NewFormPassword() string {
	return security.RandomStringWithAlphabet(FormPasswordLength, formPasswordAlphabet)
}

// ExtraEquipment lists the whole-house equipment asked about in the third step.
type ExtraEquipment struct {
	RollerShutters      bool   `json:"roller_shutters"`
	RollerShuttersType  string `json:"roller_shutters_type"`
	RollerShuttersCount string `json:"roller_shutters_count"`
	ElectricSkylights   bool   `json:"electric_skylights"`
	SkylightCount       string `json:"skylight_count"`
	Doorbell            bool   `json:"doorbell"`
	VideoIntercom       bool   `json:"video_intercom"`
	ElectricGate        bool   `json:"electric_gate"`
	EVCharger           bool   `json:"ev_charger"`
	TVOutlets           bool   `json:"tv_outlets"`
	CommunicationPanel  bool   `json:"communication_panel"`
}

// HeatingTypes holds the heating checkboxes. At least one must be set.
type HeatingTypes struct {
	Radiators   bool `json:"radiators"`
	HeatPump    bool `json:"heat_pump"`
	Other       bool `json:"other"`
	PelletStove bool `json:"pellet_stove"`
	Unknown     bool `json:"unknown"`
}

// Any reports whether at least one heating type is selected.
func (h HeatingTypes) Any() bool {
	return h.Radiators || h.HeatPump || h.Other || h.PelletStove || h.Unknown
}

// IntakeForm is the complete submission of the quote request wizard.
type IntakeForm struct {
	TypeOfWork      string `json:"type_of_work"`
	LodgingType     string `json:"lodging_type"`
	Department      string `json:"department"`
	SurfaceArea     string `json:"surface_area"`
	BreakerLocation string `json:"breaker_location"`
	HighTensionLine string `json:"high_tension_line"`
	PanelType       string `json:"panel_type"`
	AluminumJoinery string `json:"aluminum_joinery"`
	VMCNeeded       string `json:"vmc_needed"`

	Equipment ExtraEquipment   `json:"equipment"`
	Rooms     []equipment.Room `json:"rooms"`

	Heating           HeatingTypes `json:"heating_types"`
	RadiatorCount     string       `json:"radiator_count"`
	HeatPumpReference string       `json:"heat_pump_reference"`
	OtherHeating      string       `json:"other_heating"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FullName joins first and last name.
func (f IntakeForm) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.FirstName) + " " + strings.TrimSpace(f.LastName))
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidatePhone validates a French phone number, national or +33 form.
// Spaces, dots and dashes are ignored.
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", ".", "", "-", "").Replace(strings.TrimSpace(phone))
	return frPhonePattern.MatchString(cleaned)
}

// ValidateDepartment validates a French department code (01-95, 2A, 2B, 971-976).
func ValidateDepartment(code string) bool {
	return departmentPattern.MatchString(strings.ToUpper(strings.TrimSpace(code)))
}

// ValidateForm checks the fields every wizard step requires and returns a map
// of field -> error message. An empty map means the form can be submitted.
func ValidateForm(form IntakeForm) map[string]string {
	errors := make(map[string]string)

	required := []struct {
		field string
		value string
	}{
		{"type_of_work", form.TypeOfWork},
		{"lodging_type", form.LodgingType},
		{"department", form.Department},
		{"surface_area", form.SurfaceArea},
		{"breaker_location", form.BreakerLocation},
		{"high_tension_line", form.HighTensionLine},
		{"panel_type", form.PanelType},
		{"aluminum_joinery", form.AluminumJoinery},
		{"vmc_needed", form.VMCNeeded},
		{"first_name", form.FirstName},
		{"last_name", form.LastName},
		{"email", form.Email},
		{"phone", form.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errors[r.field] = "Ce champ est obligatoire"
		}
	}

	if _, ok := errors["type_of_work"]; !ok && !slices.Contains(TypeOfWorkOptions, form.TypeOfWork) {
		errors["type_of_work"] = "Type de travaux inconnu"
	}
	if _, ok := errors["lodging_type"]; !ok && !slices.Contains(LodgingTypeOptions, form.LodgingType) {
		errors["lodging_type"] = "Type de logement inconnu"
	}
	if _, ok := errors["department"]; !ok && !ValidateDepartment(form.Department) {
		errors["department"] = "Département invalide"
	}
	if _, ok := errors["surface_area"]; !ok && !surfacePattern.MatchString(strings.TrimSpace(form.SurfaceArea)) {
		errors["surface_area"] = "Surface invalide (exemple : 85 ou 85,5)"
	}
	if _, ok := errors["email"]; !ok && !ValidateEmail(form.Email) {
		errors["email"] = "Adresse email invalide"
	}
	if _, ok := errors["phone"]; !ok && !ValidatePhone(form.Phone) {
		errors["phone"] = "Numéro de téléphone invalide (exemple : 06 01 36 57 35)"
	}

	if len(form.Rooms) == 0 {
		errors["rooms"] = "Ajoutez au moins une pièce"
	}
	if !form.Heating.Any() {
		errors["heating_types"] = "Sélectionnez au moins un type de chauffage"
	}

	return errors
}
