package lead

import (
	"cmp"
	"slices"
	"strings"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
)

// Sort returns a sorted copy of leads. Equal keys keep generation order.
func Sort(leads []entity.Lead, field value.SortField, order value.SortOrder) []entity.Lead {
	sorted := slices.Clone(leads)
	compare := comparator(field)

	slices.SortStableFunc(sorted, func(a, b entity.Lead) int {
		if order == value.SortDescending {
			return compare(b, a)
		}

		return compare(a, b)
	})

	return sorted
}

func comparator(field value.SortField) func(a, b entity.Lead) int {
	switch field {
	case value.SortByBudgetMin:
		return func(a, b entity.Lead) int { return cmp.Compare(a.BudgetMin, b.BudgetMin) }
	case value.SortByName:
		return func(a, b entity.Lead) int { return strings.Compare(a.Name, b.Name) }
	case value.SortByDate:
		return func(a, b entity.Lead) int { return a.CreatedDate.Compare(b.CreatedDate) }
	default:
		return func(a, b entity.Lead) int { return cmp.Compare(a.Score, b.Score) }
	}
}
