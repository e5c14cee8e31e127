package lead_test

import (
	"fmt"
	"time"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
)

func newTestLead(id, score int, location value.Location, timeline value.Timeline, budgetMin int) entity.Lead {
	return entity.Lead{
		ID:           id,
		Name:         fmt.Sprintf("Lead %d", id),
		Email:        fmt.Sprintf("client%d@example.com", id),
		BudgetMin:    budgetMin,
		BudgetMax:    budgetMin + 100000,
		Location:     location,
		Timeline:     timeline,
		PropertyType: value.PropertyTypeHouse,
		Score:        score,
		Qualified:    value.IsQualified(score),
		Urgency:      value.UrgencyFromTimeline(timeline),
		CreatedDate:  time.Date(2024, time.January, id, 0, 0, 0, 0, time.UTC),
	}
}

// testLeads: scores 55, 72, 89, 40.
func testLeads() []entity.Lead {
	return []entity.Lead{
		newTestLead(1, 55, value.LocationMelbourne, value.Timeline3To6Months, 300000),
		newTestLead(2, 72, value.LocationSydney, value.Timeline1To3Months, 650000),
		newTestLead(3, 89, value.LocationSydney, value.Timeline12PlusMonths, 900000),
		newTestLead(4, 40, value.LocationPerth, value.Timeline6To12Months, 200000),
	}
}
