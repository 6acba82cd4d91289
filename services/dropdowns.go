package services

import "elecquote/equipment"

// Option is a value/label pair rendered as a select option or radio button.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TypeOfWorkOptions lists the accepted "type de travaux" values.
var TypeOfWorkOptions = []string{"Construction", "Rénovation"}

// LodgingTypeOptions lists the accepted lodging types.
var LodgingTypeOptions = []string{"Maison", "Appartement"}

var BreakerLocationOptions = []Option{
	{Value: "inside", Label: "À l'intérieur du logement"},
	{Value: "edge", Label: "En limite de propriété"},
}

var HighTensionLineOptions = []Option{
	{Value: "aerienne", Label: "Aérienne"},
	{Value: "souterraine", Label: "Souterraine"},
	{Value: "unknown", Label: "Je ne sais pas"},
}

var PanelTypeOptions = []Option{
	{Value: "saillie", Label: "En saillie"},
	{Value: "encastre", Label: "Encastré"},
}

// YesNoUnknownOptions is used by the aluminum joinery question.
var YesNoUnknownOptions = []Option{
	{Value: "oui", Label: "Oui"},
	{Value: "non", Label: "Non"},
	{Value: "unknown", Label: "Je ne sais pas"},
}

var YesNoOptions = []Option{
	{Value: "oui", Label: "Oui"},
	{Value: "non", Label: "Non"},
}

// HeatingOptions keys match the HeatingTypes JSON fields.
var HeatingOptions = []Option{
	{Value: "radiators", Label: "Radiateurs électriques"},
	{Value: "heat_pump", Label: "Pompe à chaleur"},
	{Value: "other", Label: "Autre"},
	{Value: "pellet_stove", Label: "Poêle à granulés"},
	{Value: "unknown", Label: "Je ne sais pas"},
}

var RollerShutterTypeOptions = []Option{
	{Value: "filaire", Label: "Filaire"},
	{Value: "radio", Label: "Radio"},
	{Value: "solaire", Label: "Solaire"},
}

var OutletBlockTypeOptions = []equipment.OutletBlockType{
	equipment.BlockSimple,
	equipment.BlockDouble,
	equipment.BlockTriple,
	equipment.BlockQuadruple,
}

// DepartmentOptions lists the French departments in code order.
var DepartmentOptions = []Option{
	{Value: "01", Label: "01 - Ain"},
	{Value: "02", Label: "02 - Aisne"},
	{Value: "03", Label: "03 - Allier"},
	{Value: "04", Label: "04 - Alpes-de-Haute-Provence"},
	{Value: "05", Label: "05 - Hautes-Alpes"},
	{Value: "06", Label: "06 - Alpes-Maritimes"},
	{Value: "07", Label: "07 - Ardèche"},
	{Value: "08", Label: "08 - Ardennes"},
	{Value: "09", Label: "09 - Ariège"},
	{Value: "10", Label: "10 - Aube"},
	{Value: "11", Label: "11 - Aude"},
	{Value: "12", Label: "12 - Aveyron"},
	{Value: "13", Label: "13 - Bouches-du-Rhône"},
	{Value: "14", Label: "14 - Calvados"},
	{Value: "15", Label: "15 - Cantal"},
	{Value: "16", Label: "16 - Charente"},
	{Value: "17", Label: "17 - Charente-Maritime"},
	{Value: "18", Label: "18 - Cher"},
	{Value: "19", Label: "19 - Corrèze"},
	{Value: "2A", Label: "2A - Corse-du-Sud"},
	{Value: "2B", Label: "2B - Haute-Corse"},
	{Value: "21", Label: "21 - Côte-d'Or"},
	{Value: "22", Label: "22 - Côtes-d'Armor"},
	{Value: "23", Label: "23 - Creuse"},
	{Value: "24", Label: "24 - Dordogne"},
	{Value: "25", Label: "25 - Doubs"},
	{Value: "26", Label: "26 - Drôme"},
	{Value: "27", Label: "27 - Eure"},
	{Value: "28", Label: "28 - Eure-et-Loir"},
	{Value: "29", Label: "29 - Finistère"},
	{Value: "30", Label: "30 - Gard"},
	{Value: "31", Label: "31 - Haute-Garonne"},
	{Value: "32", Label: "32 - Gers"},
	{Value: "33", Label: "33 - Gironde"},
	{Value: "34", Label: "34 - Hérault"},
	{Value: "35", Label: "35 - Ille-et-Vilaine"},
	{Value: "36", Label: "36 - Indre"},
	{Value: "37", Label: "37 - Indre-et-Loire"},
	{Value: "38", Label: "38 - Isère"},
	{Value: "39", Label: "39 - Jura"},
	{Value: "40", Label: "40 - Landes"},
	{Value: "41", Label: "41 - Loir-et-Cher"},
	{Value: "42", Label: "42 - Loire"},
	{Value: "43", Label: "43 - Haute-Loire"},
	{Value: "44", Label: "44 - Loire-Atlantique"},
	{Value: "45", Label: "45 - Loiret"},
	{Value: "46", Label: "46 - Lot"},
	{Value: "47", Label: "47 - Lot-et-Garonne"},
	{Value: "48", Label: "48 - Lozère"},
	{Value: "49", Label: "49 - Maine-et-Loire"},
	{Value: "50", Label: "50 - Manche"},
	{Value: "51", Label: "51 - Marne"},
	{Value: "52", Label: "52 - Haute-Marne"},
	{Value: "53", Label: "53 - Mayenne"},
	{Value: "54", Label: "54 - Meurthe-et-Moselle"},
	{Value: "55", Label: "55 - Meuse"},
	{Value: "56", Label: "56 - Morbihan"},
	{Value: "57", Label: "57 - Moselle"},
	{Value: "58", Label: "58 - Nièvre"},
	{Value: "59", Label: "59 - Nord"},
	{Value: "60", Label: "60 - Oise"},
	{Value: "61", Label: "61 - Orne"},
	{Value: "62", Label: "62 - Pas-de-Calais"},
	{Value: "63", Label: "63 - Puy-de-Dôme"},
	{Value: "64", Label: "64 - Pyrénées-Atlantiques"},
	{Value: "65", Label: "65 - Hautes-Pyrénées"},
	{Value: "66", Label: "66 - Pyrénées-Orientales"},
	{Value: "67", Label: "67 - Bas-Rhin"},
	{Value: "68", Label: "68 - Haut-Rhin"},
	{Value: "69", Label: "69 - Rhône"},
	{Value: "70", Label: "70 - Haute-Saône"},
	{Value: "71", Label: "71 - Saône-et-Loire"},
	{Value: "72", Label: "72 - Sarthe"},
	{Value: "73", Label: "73 - Savoie"},
	{Value: "74", Label: "74 - Haute-Savoie"},
	{Value: "75", Label: "75 - Paris"},
	{Value: "76", Label: "76 - Seine-Maritime"},
	{Value: "77", Label: "77 - Seine-et-Marne"},
	{Value: "78", Label: "78 - Yvelines"},
	{Value: "79", Label: "79 - Deux-Sèvres"},
	{Value: "80", Label: "80 - Somme"},
	{Value: "81", Label: "81 - Tarn"},
	{Value: "82", Label: "82 - Tarn-et-Garonne"},
	{Value: "83", Label: "83 - Var"},
	{Value: "84", Label: "84 - Vaucluse"},
	{Value: "85", Label: "85 - Vendée"},
	{Value: "86", Label: "86 - Vienne"},
	{Value: "87", Label: "87 - Haute-Vienne"},
	{Value: "88", Label: "88 - Vosges"},
	{Value: "89", Label: "89 - Yonne"},
	{Value: "90", Label: "90 - Territoire de Belfort"},
	{Value: "91", Label: "91 - Essonne"},
	{Value: "92", Label: "92 - Hauts-de-Seine"},
	{Value: "93", Label: "93 - Seine-Saint-Denis"},
	{Value: "94", Label: "94 - Val-de-Marne"},
	{Value: "95", Label: "95 - Val-d'Oise"},
	{Value: "971", Label: "971 - Guadeloupe"},
	{Value: "972", Label: "972 - Martinique"},
	{Value: "973", Label: "973 - Guyane"},
	{Value: "974", Label: "974 - La Réunion"},
	{Value: "976", Label: "976 - Mayotte"},
}

// FormOptions groups every option list the intake wizard renders.
type FormOptions struct {
	TypeOfWork         []string                      `json:"type_of_work"`
	LodgingTypes       []string                      `json:"lodging_types"`
	Departments        []Option                      `json:"departments"`
	BreakerLocations   []Option                      `json:"breaker_locations"`
	HighTensionLines   []Option                      `json:"high_tension_lines"`
	PanelTypes         []Option                      `json:"panel_types"`
	AluminumJoinery    []Option                      `json:"aluminum_joinery"`
	VMCNeeded          []Option                      `json:"vmc_needed"`
	Heating            []Option                      `json:"heating"`
	RollerShutterTypes []Option                      `json:"roller_shutter_types"`
	RoomKinds          []equipment.RoomKind          `json:"room_kinds"`
	InteriorLighting   []equipment.LightingType      `json:"interior_lighting"`
	ExteriorLighting   []equipment.LightingType      `json:"exterior_lighting"`
	SpecializedOutlets []equipment.SpecializedOutlet `json:"specialized_outlets"`
	OutletBlockTypes   []equipment.OutletBlockType   `json:"outlet_block_types"`
}

// AllFormOptions returns the option lists served to the wizard.
func AllFormOptions() FormOptions {
	return FormOptions{
		TypeOfWork:         TypeOfWorkOptions,
		LodgingTypes:       LodgingTypeOptions,
		Departments:        DepartmentOptions,
		BreakerLocations:   BreakerLocationOptions,
		HighTensionLines:   HighTensionLineOptions,
		PanelTypes:         PanelTypeOptions,
		AluminumJoinery:    YesNoUnknownOptions,
		VMCNeeded:          YesNoOptions,
		Heating:            HeatingOptions,
		RollerShutterTypes: RollerShutterTypeOptions,
		RoomKinds:          equipment.RoomKinds,
		InteriorLighting:   equipment.InteriorLightingOptions,
		ExteriorLighting:   equipment.ExteriorLightingOptions,
		SpecializedOutlets: equipment.SpecializedOutlets,
		OutletBlockTypes:   OutletBlockTypeOptions,
	}
}
