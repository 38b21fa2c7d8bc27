package pricing

import (
	"reflect"
	"testing"
)

func mustCount(t *testing.T, a, c, i int) PassengerCount {
	t.Helper()
	pc, err := NewPassengerCount(a, c, i)
	if err != nil {
		t.Fatalf("count %d/%d/%d: %v", a, c, i, err)
	}
	return pc
}

func TestComputeBreakdownNoFareYieldsZero(t *testing.T) {
	count := mustCount(t, 2, 0, 0)
	b := ComputeBreakdown(nil, count, []Passenger{{Type: TypeAdult}, {Type: TypeAdult}}, NewLegOptions(), nil)
	if b != (Breakdown{}) {
		t.Fatalf("expected zero breakdown, got %+v", b)
	}
}

func TestComputeBreakdownRoundTripExample(t *testing.T) {
	// 2 dewasa + 1 anak + 1 bayi, fare 1.000.000/seat, round-trip,
	// satu bagasi outbound 150.000 untuk satu dewasa.
	fare := &FareInput{ID: 1, ClassType: "economy", PricePerAdultSeat: 1_000_000}
	count := mustCount(t, 2, 1, 1)

	outbound := NewLegOptions()
	outbound.Baggage.Add(10, 150_000)
	ret := NewLegOptions()

	passengers := []Passenger{
		{Type: TypeAdult, Outbound: Selection{BaggageID: 10}},
		{Type: TypeAdult},
		{Type: TypeChild},
		{Type: TypeInfant},
	}

	b := ComputeBreakdown(fare, count, passengers, outbound, &ret)

	if b.AdultFare != 4_000_000 {
		t.Fatalf("adult fare: got %d", b.AdultFare)
	}
	if b.ChildFare != 2_000_000 {
		t.Fatalf("child fare: got %d", b.ChildFare)
	}
	if b.InfantFare != 800_000 {
		t.Fatalf("infant fare: got %d", b.InfantFare)
	}
	if b.BaseFare() != 6_800_000 {
		t.Fatalf("base fare: got %d", b.BaseFare())
	}
	if b.BaggageOutbound != 150_000 {
		t.Fatalf("baggage outbound: got %d", b.BaggageOutbound)
	}
	if b.Total != 6_950_000 {
		t.Fatalf("total: got %d", b.Total)
	}
}

func TestTotalEqualsSumOfComponents(t *testing.T) {
	fare := &FareInput{ID: 2, PricePerAdultSeat: 750_000}
	count := mustCount(t, 3, 2, 1)

	outbound := NewLegOptions()
	outbound.Baggage.Add(1, 100_000)
	outbound.Meals.Add(2, 45_000)
	ret := NewLegOptions()
	ret.Baggage.Add(3, 120_000)
	ret.Meals.Add(4, 60_000)

	passengers := []Passenger{
		{Type: TypeAdult, Outbound: Selection{BaggageID: 1, Meals: map[int64]int{2: 2}}, Return: Selection{BaggageID: 3}},
		{Type: TypeAdult, Return: Selection{Meals: map[int64]int{4: 1}}},
		{Type: TypeAdult},
		{Type: TypeChild, Outbound: Selection{BaggageID: 1}},
		{Type: TypeChild},
		{Type: TypeInfant},
	}

	b := ComputeBreakdown(fare, count, passengers, outbound, &ret)
	sum := b.AdultFare + b.ChildFare + b.InfantFare +
		b.BaggageOutbound + b.BaggageReturn + b.MealOutbound + b.MealReturn
	if b.Total != sum {
		t.Fatalf("total %d != component sum %d", b.Total, sum)
	}
}

func TestRoundTripDoublesBaseFareOnly(t *testing.T) {
	fare := &FareInput{ID: 3, PricePerAdultSeat: 500_000}
	count := mustCount(t, 2, 1, 0)
	passengers := []Passenger{{Type: TypeAdult}, {Type: TypeAdult}, {Type: TypeChild}}

	oneWay := ComputeBreakdown(fare, count, passengers, NewLegOptions(), nil)
	ret := NewLegOptions()
	roundTrip := ComputeBreakdown(fare, count, passengers, NewLegOptions(), &ret)

	if roundTrip.BaseFare() != 2*oneWay.BaseFare() {
		t.Fatalf("round-trip base %d, want double of %d", roundTrip.BaseFare(), oneWay.BaseFare())
	}
	if roundTrip.AncillaryTotal() != 0 {
		t.Fatalf("zero selections must not produce ancillary charges, got %d", roundTrip.AncillaryTotal())
	}
}

func TestOneWaySkipsReturnLegEntirely(t *testing.T) {
	fare := &FareInput{ID: 4, PricePerAdultSeat: 900_000}
	count := mustCount(t, 1, 0, 0)
	// Return selections present on the passenger must be ignored one-way.
	passengers := []Passenger{{
		Type:   TypeAdult,
		Return: Selection{BaggageID: 99, Meals: map[int64]int{5: 3}},
	}}

	b := ComputeBreakdown(fare, count, passengers, NewLegOptions(), nil)
	if b.BaggageReturn != 0 || b.MealReturn != 0 {
		t.Fatalf("one-way computed return ancillaries: %+v", b)
	}
	if b.Total != 900_000 {
		t.Fatalf("total: got %d", b.Total)
	}
}

func TestMissingSelectionContributesZero(t *testing.T) {
	fare := &FareInput{ID: 5, PricePerAdultSeat: 600_000}
	count := mustCount(t, 1, 0, 0)

	outbound := NewLegOptions()
	outbound.Baggage.Add(7, 80_000)

	// No baggage selected and an unknown meal id: both degrade to zero.
	passengers := []Passenger{{
		Type:     TypeAdult,
		Outbound: Selection{BaggageID: NoSelectionID, Meals: map[int64]int{12345: 2}},
	}}

	b := ComputeBreakdown(fare, count, passengers, outbound, nil)
	if b.AncillaryTotal() != 0 {
		t.Fatalf("missing selections must contribute zero, got %+v", b)
	}
}

func TestBaggageAndMealSharingIDPriceIndependently(t *testing.T) {
	// Kedua tabel katalog punya sequence id sendiri; id 5 muncul di keduanya.
	fare := &FareInput{ID: 9, PricePerAdultSeat: 1_000_000}
	count := mustCount(t, 1, 0, 0)

	outbound := NewLegOptions()
	outbound.Baggage.Add(5, 150_000)
	outbound.Meals.Add(5, 50_000)

	passengers := []Passenger{{
		Type:     TypeAdult,
		Outbound: Selection{BaggageID: 5, Meals: map[int64]int{5: 1}},
	}}

	b := ComputeBreakdown(fare, count, passengers, outbound, nil)
	if b.BaggageOutbound != 150_000 {
		t.Fatalf("baggage priced %d, want 150000", b.BaggageOutbound)
	}
	if b.MealOutbound != 50_000 {
		t.Fatalf("meal priced %d, want 50000", b.MealOutbound)
	}
	if b.Total != 1_200_000 {
		t.Fatalf("total: got %d", b.Total)
	}
}

func TestPassengerAncillariesPerLeg(t *testing.T) {
	outbound := NewLegOptions()
	outbound.Baggage.Add(1, 150_000)
	outbound.Meals.Add(1, 40_000)
	ret := NewLegOptions()
	ret.Baggage.Add(1, 120_000)

	passengers := []Passenger{
		{Type: TypeAdult, Outbound: Selection{BaggageID: 1, Meals: map[int64]int{1: 2}}, Return: Selection{BaggageID: 1}},
		{Type: TypeChild},
	}

	totals := PassengerAncillaries(passengers, outbound, &ret)
	if len(totals) != 2 {
		t.Fatalf("expected one entry per passenger, got %d", len(totals))
	}
	if totals[0].Outbound != 230_000 || totals[0].Return != 120_000 {
		t.Fatalf("passenger 0 totals: %+v", totals[0])
	}
	if totals[1].Outbound != 0 || totals[1].Return != 0 {
		t.Fatalf("passenger without selections must total zero, got %+v", totals[1])
	}

	oneWay := PassengerAncillaries(passengers, outbound, nil)
	if oneWay[0].Return != 0 {
		t.Fatalf("one-way must leave return total zero, got %d", oneWay[0].Return)
	}
}

func TestIncreasingMealQuantityNeverDecreasesTotal(t *testing.T) {
	fare := &FareInput{ID: 6, PricePerAdultSeat: 400_000}
	count := mustCount(t, 1, 0, 0)
	outbound := NewLegOptions()
	outbound.Meals.Add(8, 35_000)

	prev := int64(-1)
	for qty := 0; qty <= 5; qty++ {
		passengers := []Passenger{{
			Type:     TypeAdult,
			Outbound: Selection{Meals: map[int64]int{8: qty}},
		}}
		b := ComputeBreakdown(fare, count, passengers, outbound, nil)
		if b.Total < prev {
			t.Fatalf("qty %d decreased total: %d < %d", qty, b.Total, prev)
		}
		prev = b.Total
	}
}

func TestComputeBreakdownIdempotent(t *testing.T) {
	fare := &FareInput{ID: 7, PricePerAdultSeat: 1_250_000}
	count := mustCount(t, 2, 0, 1)
	outbound := NewLegOptions()
	outbound.Baggage.Add(1, 150_000)
	outbound.Meals.Add(2, 50_000)
	ret := NewLegOptions()
	ret.Baggage.Add(1, 150_000)
	passengers := []Passenger{
		{Type: TypeAdult, Outbound: Selection{BaggageID: 1, Meals: map[int64]int{2: 1}}, Return: Selection{BaggageID: 1}},
		{Type: TypeAdult},
		{Type: TypeInfant},
	}

	first := ComputeBreakdown(fare, count, passengers, outbound, &ret)
	second := ComputeBreakdown(fare, count, passengers, outbound, &ret)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("not idempotent: %+v vs %+v", first, second)
	}
}

func TestNegativeMealQuantityIgnored(t *testing.T) {
	fare := &FareInput{ID: 8, PricePerAdultSeat: 300_000}
	count := mustCount(t, 1, 0, 0)
	outbound := NewLegOptions()
	outbound.Meals.Add(9, 40_000)

	passengers := []Passenger{{
		Type:     TypeAdult,
		Outbound: Selection{Meals: map[int64]int{9: -3}},
	}}
	b := ComputeBreakdown(fare, count, passengers, outbound, nil)
	if b.MealOutbound != 0 {
		t.Fatalf("negative quantity leaked into total: %+v", b)
	}
}
