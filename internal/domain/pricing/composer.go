package pricing

import "math"

// Fees carries the non-rental inputs to a quote. DeliveryFee is resolved by
// the caller (zero for store pickup, or whatever the delivery-location lookup
// yielded); WeeklyDeposit and PerDriverFee come from business config.
type Fees struct {
	DeliveryFee       float64
	AdditionalDrivers int
	PerDriverFee      float64
	WeeklyDeposit     float64
}

// Quote is the full price breakdown for a rental request. It is produced
// fresh on every input change and never mutated; callers replace it
// wholesale.
type Quote struct {
	RentalDays int
	RentalType RentalType
	Method     PricingMethod
	Rates      RateSnapshot
	Breakdown  Breakdown

	RentalAmount        float64
	SecurityDeposit     float64
	DeliveryFee         float64
	AdditionalDriverFee float64
	Subtotal            float64
	TotalDueNow         float64
}

// RoundCents applies round(x*100)/100 semantics. Intermediate decomposition
// terms stay unrounded; only final amounts pass through here, so float drift
// cannot compound across tiers.
func RoundCents(x float64) float64 {
	return math.Round(x*100) / 100
}

// Deposit rules are table-driven by rental type rather than derived from
// amounts: weekly rentals take a fixed configured deposit, monthly and
// semester rentals take one month's rent.
var depositRules = map[RentalType]func(rates RateSnapshot, weeklyDeposit float64) float64{
	RentalTypeWeekly:   func(_ RateSnapshot, weeklyDeposit float64) float64 { return weeklyDeposit },
	RentalTypeMonthly:  func(rates RateSnapshot, _ float64) float64 { return rates.Monthly },
	RentalTypeSemester: func(rates RateSnapshot, _ float64) float64 { return rates.Monthly },
}

// AmountFor prices a decomposition against frozen rates, rounding only the
// final figure. Shared by the quote composer and extension pricing.
func AmountFor(rates RateSnapshot, b Breakdown) float64 {
	var amount float64
	switch b.Method {
	case MethodMonthly:
		amount = float64(b.FullMonths)*rates.Monthly +
			float64(b.RemainingWeeks)*rates.Weekly +
			float64(b.ExtraDays)*rates.Daily
	case MethodWeekly:
		amount = float64(b.FullWeeks)*rates.Weekly +
			float64(b.OverflowDays)*rates.Daily
	case MethodSemester:
		amount = rates.Semester
	}
	return RoundCents(amount)
}

// ComposeQuote combines a decomposition, frozen rates and fee inputs into the
// final breakdown. Pure function: no clock, no I/O, byte-identical output for
// identical inputs.
func ComposeQuote(rentalType RentalType, rates RateSnapshot, b Breakdown, fees Fees) Quote {
	rentalAmount := AmountFor(rates, b)
	deposit := RoundCents(depositRules[rentalType](rates, fees.WeeklyDeposit))
	deliveryFee := RoundCents(fees.DeliveryFee)
	driverFee := RoundCents(float64(fees.AdditionalDrivers) * fees.PerDriverFee)

	subtotal := RoundCents(rentalAmount + deliveryFee + driverFee)
	total := RoundCents(subtotal + deposit)

	return Quote{
		RentalDays:          b.RentalDays,
		RentalType:          rentalType,
		Method:              b.Method,
		Rates:               rates,
		Breakdown:           b,
		RentalAmount:        rentalAmount,
		SecurityDeposit:     deposit,
		DeliveryFee:         deliveryFee,
		AdditionalDriverFee: driverFee,
		Subtotal:            subtotal,
		TotalDueNow:         total,
	}
}
