package domain

type RoomType string

const (
	RoomIndividual RoomType = "individual"
	RoomDouble     RoomType = "double"
	RoomSuite      RoomType = "suite"
)

// RoomTypes lists the closed set of room types in display order.
var RoomTypes = []RoomType{RoomIndividual, RoomDouble, RoomSuite}

// nightly rate per room type, in whole euros
var nightlyRates = map[RoomType]int{
	RoomIndividual: 50,
	RoomDouble:     80,
	RoomSuite:      150,
}

// NightlyRate returns the flat per-night price of the type, 0 for an unknown type.
func (t RoomType) NightlyRate() int { return nightlyRates[t] }

func (t RoomType) Valid() bool {
	_, ok := nightlyRates[t]
	return ok
}

func (t RoomType) String() string { return string(t) }

type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomReserved  RoomStatus = "reserved"
	RoomOccupied  RoomStatus = "occupied"
)

var RoomStatuses = []RoomStatus{RoomAvailable, RoomReserved, RoomOccupied}

func (s RoomStatus) String() string { return string(s) }

type Room struct {
	Number      int
	Type        RoomType
	Status      RoomStatus
	Description string
}

func (r Room) NightlyRate() int { return r.Type.NightlyRate() }

// Floor is derived from the room number: 101..105 live on floor 1.
func (r Room) Floor() int { return r.Number / 100 }
