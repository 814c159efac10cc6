package pricing

import (
	"time"
)

// Installment is one scheduled payment of a proposal payment plan.
type Installment struct {
	Sequence int
	Amount   float64
	DueDate  time.Time
}

// BuildInstallmentPlan splits a total into count equal monthly payments
// starting one month from the given start date, with every due date capped
// at the event date. The final installment absorbs the rounding remainder
// so the plan always sums to the total at cent precision.
func BuildInstallmentPlan(total float64, count int, start, eventDate time.Time) []Installment {
	if count <= 0 || total <= 0 {
		return nil
	}
	start = Truncate(start)
	eventDate = Truncate(eventDate)

	per := RoundToCent(total / float64(count))
	plan := make([]Installment, 0, count)
	allocated := 0.0
	for i := 1; i <= count; i++ {
		amount := per
		if i == count {
			amount = RoundToCent(total - allocated)
		}
		allocated = RoundToCent(allocated + amount)

		due := start.AddDate(0, i, 0)
		if due.After(eventDate) {
			due = eventDate
		}
		plan = append(plan, Installment{Sequence: i, Amount: amount, DueDate: due})
	}
	return plan
}
