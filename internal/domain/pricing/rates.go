package pricing

import "fmt"

// RateCard holds a vehicle's current rates. These are live values the fleet
// team reprices over time; they must never be read back by an existing
// booking.
type RateCard struct {
	Daily    float64
	Weekly   float64
	Monthly  float64
	Semester float64
}

// RateSnapshot is the frozen copy captured into a booking at creation.
// Keeping it a separate type from RateCard makes the freezing invariant
// structural: nothing that holds a snapshot can observe a later reprice.
type RateSnapshot struct {
	Daily    float64
	Weekly   float64
	Monthly  float64
	Semester float64
}

// MissingRateError blocks quote generation when the rate required by the
// chosen pricing method is absent. Silent zero-rate fallbacks are where
// proration bugs hide, so this is a hard failure.
type MissingRateError struct {
	Method PricingMethod
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("vehicle has no %s rate configured", e.Method)
}

// ResolveRates selects the rates relevant to the rental type and freezes
// them. Semester rentals bill flat on the semester rate, but their deposit is
// one month of rent, so the monthly rate is required too. Weekly and monthly
// methods both keep daily/weekly/monthly: monthly billing prices overflow
// weeks at the weekly rate, and both price overflow days at the daily rate.
func ResolveRates(card RateCard, rentalType RentalType) (RateSnapshot, error) {
	switch rentalType.Method() {
	case MethodSemester:
		if card.Semester <= 0 {
			return RateSnapshot{}, &MissingRateError{Method: MethodSemester}
		}
		if card.Monthly <= 0 {
			return RateSnapshot{}, &MissingRateError{Method: MethodMonthly}
		}
		return RateSnapshot{Monthly: card.Monthly, Semester: card.Semester}, nil
	case MethodMonthly:
		if card.Monthly <= 0 {
			return RateSnapshot{}, &MissingRateError{Method: MethodMonthly}
		}
	default:
		if card.Weekly <= 0 {
			return RateSnapshot{}, &MissingRateError{Method: MethodWeekly}
		}
	}
	return RateSnapshot{
		Daily:   card.Daily,
		Weekly:  card.Weekly,
		Monthly: card.Monthly,
	}, nil
}
