package models

// Flight is a catalog entry owned by the reference-data admin.
type Flight struct {
	ID            int64  `json:"id"`
	FlightNumber  string `json:"flight_number"`
	AirlineID     int64  `json:"airline_id"`
	AircraftID    int64  `json:"aircraft_id"`
	OriginCode    string `json:"origin_code"`
	DestCode      string `json:"dest_code"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	SeatsTotal    int    `json:"seats_total"`
	SeatsLeft     int    `json:"seats_left"`
}

// FarePackage is a priced product bundling cabin class and per-seat price.
type FarePackage struct {
	ID                int64  `json:"id"`
	FlightID          int64  `json:"flight_id"`
	Name              string `json:"name"`
	ClassType         string `json:"class_type"` // economy / business
	PricePerAdultSeat int64  `json:"price_per_adult_seat"`
}

// Leg scopes an ancillary to one direction of the itinerary.
const (
	LegOutbound = "outbound"
	LegReturn   = "return"
)

// BaggageOption is a checked-baggage ancillary for one leg.
type BaggageOption struct {
	ID       int64  `json:"id"`
	FlightID int64  `json:"flight_id"`
	Leg      string `json:"leg"`
	Label    string `json:"label"`
	WeightKg int    `json:"weight_kg"`
	Price    int64  `json:"price"`
}

// MealOption is a meal ancillary for one leg, orderable per quantity.
type MealOption struct {
	ID       int64  `json:"id"`
	FlightID int64  `json:"flight_id"`
	Leg      string `json:"leg"`
	Label    string `json:"label"`
	Price    int64  `json:"price"`
}
