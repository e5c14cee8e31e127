package lead_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/domain/value"
)

func TestSort(t *testing.T) {
	rq := require.New(t)

	leads := testLeads()
	leads[0].Name = "Zoe Brown"
	leads[3].Name = "Adam Smith"

	testCases := []struct {
		name  string
		field value.SortField
		order value.SortOrder
		ids   []int
	}{
		{name: "Score descending", field: value.SortByScore, order: value.SortDescending, ids: []int{3, 2, 1, 4}},
		{name: "Score ascending", field: value.SortByScore, order: value.SortAscending, ids: []int{4, 1, 2, 3}},
		{name: "Budget descending", field: value.SortByBudgetMin, order: value.SortDescending, ids: []int{3, 2, 1, 4}},
		{name: "Name ascending", field: value.SortByName, order: value.SortAscending, ids: []int{4, 2, 3, 1}},
		{name: "Date descending", field: value.SortByDate, order: value.SortDescending, ids: []int{4, 3, 2, 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			sorted := lead.Sort(leads, tc.field, tc.order)

			rq.Equal(tc.ids, lo.Map(sorted, func(l entity.Lead, _ int) int { return l.ID }))
		})
	}

	rq.Equal(1, leads[0].ID, "input must stay untouched")
}
