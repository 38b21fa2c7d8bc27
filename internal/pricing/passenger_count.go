package pricing

import "flightdesk/internal/domain"

// MaxPassengers caps one itinerary.
const MaxPassengers = 7

// PassengerCount is the adult/child/infant mix of an itinerary. Mutations go
// through WithAdults/WithChildren/WithInfants so an invalid mix (infants
// outnumbering adults, empty roster, oversize party) can never reach the
// aggregator.
type PassengerCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

func NewPassengerCount(adults, children, infants int) (PassengerCount, error) {
	c := PassengerCount{Adults: adults, Children: children, Infants: infants}
	if err := c.Validate(); err != nil {
		return PassengerCount{}, err
	}
	return c, nil
}

func (c PassengerCount) Total() int {
	return c.Adults + c.Children + c.Infants
}

func (c PassengerCount) Validate() error {
	if c.Adults < 1 {
		return domain.ValidationError{Field: "adults", Msg: "minimal 1 penumpang dewasa"}
	}
	if c.Children < 0 {
		return domain.ValidationError{Field: "children", Msg: "jumlah anak tidak valid"}
	}
	if c.Infants < 0 {
		return domain.ValidationError{Field: "infants", Msg: "jumlah bayi tidak valid"}
	}
	if c.Infants > c.Adults {
		return domain.ValidationError{Field: "infants", Msg: "jumlah bayi melebihi jumlah dewasa"}
	}
	if c.Total() > MaxPassengers {
		return domain.ValidationError{Field: "passengers", Msg: "maksimal 7 penumpang"}
	}
	return nil
}

func (c PassengerCount) WithAdults(n int) (PassengerCount, error) {
	return NewPassengerCount(n, c.Children, c.Infants)
}

func (c PassengerCount) WithChildren(n int) (PassengerCount, error) {
	return NewPassengerCount(c.Adults, n, c.Infants)
}

func (c PassengerCount) WithInfants(n int) (PassengerCount, error) {
	return NewPassengerCount(c.Adults, c.Children, n)
}
