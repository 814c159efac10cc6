package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInstallmentPlan_SumsToTotal(t *testing.T) {
	plan := BuildInstallmentPlan(1000, 3, day(2024, 1, 15), day(2024, 12, 1))
	require.Len(t, plan, 3)

	assert.Equal(t, 333.33, plan[0].Amount)
	assert.Equal(t, 333.33, plan[1].Amount)
	// Final installment absorbs the rounding remainder.
	assert.Equal(t, 333.34, plan[2].Amount)

	sum := 0.0
	for _, ins := range plan {
		sum = RoundToCent(sum + ins.Amount)
	}
	assert.Equal(t, 1000.0, sum)
}

func TestBuildInstallmentPlan_MonthlyDueDatesCappedAtEvent(t *testing.T) {
	plan := BuildInstallmentPlan(600, 4, day(2024, 1, 10), day(2024, 3, 20))
	require.Len(t, plan, 4)

	assert.Equal(t, day(2024, 2, 10), plan[0].DueDate)
	assert.Equal(t, day(2024, 3, 10), plan[1].DueDate)
	// Later installments would fall past the event and get capped.
	assert.Equal(t, day(2024, 3, 20), plan[2].DueDate)
	assert.Equal(t, day(2024, 3, 20), plan[3].DueDate)
}

func TestBuildInstallmentPlan_InvalidInput(t *testing.T) {
	assert.Nil(t, BuildInstallmentPlan(1000, 0, day(2024, 1, 1), day(2024, 6, 1)))
	assert.Nil(t, BuildInstallmentPlan(0, 3, day(2024, 1, 1), day(2024, 6, 1)))
}
