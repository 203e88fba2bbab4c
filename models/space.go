package models

// SpaceType enumerates the kinds of bookable spaces.
type SpaceType string

const (
	SpaceAula        SpaceType = "aula"
	SpaceLaboratorio SpaceType = "laboratorio"
	SpaceAuditorio   SpaceType = "auditorio"
)

// Floor enumerates building floors; FloorUnknown marks spaces whose floor
// could not be derived.
type Floor string

const (
	FloorGround  Floor = "planta_baja"
	FloorFirst   Floor = "piso_1"
	FloorSecond  Floor = "piso_2"
	FloorUnknown Floor = "sin_piso"
)

// FloorOrder fixes the display order of floor groups.
var FloorOrder = []Floor{FloorGround, FloorFirst, FloorSecond, FloorUnknown}

// FloorLabels maps floor keys to their display names.
var FloorLabels = map[Floor]string{
	FloorGround:  "Planta baja",
	FloorFirst:   "Piso 1",
	FloorSecond:  "Piso 2",
	FloorUnknown: "Sin piso",
}

// Space is a bookable room: classroom, laboratory or auditorium.
type Space struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Type        SpaceType `bson:"type" json:"type"`
	Capacity    int       `bson:"capacity" json:"capacity"`
	Floor       Floor     `bson:"floor,omitempty" json:"floor,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
}

// FloorGroup is a set of spaces on one floor, used for grouped listings.
type FloorGroup struct {
	Key    Floor   `json:"key"`
	Label  string  `json:"label"`
	Spaces []Space `json:"spaces"`
}
