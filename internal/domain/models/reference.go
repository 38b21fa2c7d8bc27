package models

// Reference data managed from the back office.

type Airport struct {
	ID   int64  `json:"id"`
	Code string `json:"code"` // IATA
	Name string `json:"name"`
	City string `json:"city"`
}

type Airline struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Aircraft struct {
	ID        int64  `json:"id"`
	AirlineID int64  `json:"airline_id"`
	Model     string `json:"model"`
	Seats     int    `json:"seats"`
}

// Promotion discounts the final amount at booking creation.
type Promotion struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	// Either a percentage (1-100) or a flat amount; flat wins when both set.
	Percent    int    `json:"percent"`
	FlatAmount int64  `json:"flat_amount"`
	ValidFrom  string `json:"valid_from"`
	ValidUntil string `json:"valid_until"`
	Active     bool   `json:"active"`
}
