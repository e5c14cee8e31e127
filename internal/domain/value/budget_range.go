package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/pkg/errcodes"
)

// BudgetRange is an inclusive bound on the minimum budget of a lead.
type BudgetRange struct {
	Low  int
	High int
}

func NewBudgetRange(low, high int) (BudgetRange, error) {
	if low > high {
		return BudgetRange{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("budget range low %d is greater than high %d", low, high),
			failure.WithCode(errcodes.InvalidBudgetRange),
			failure.WithDescription("Budget range lower bound must not exceed upper bound"),
		)
	}

	return BudgetRange{Low: low, High: high}, nil
}

func (r BudgetRange) Contains(budget int) bool {
	return budget >= r.Low && budget <= r.High
}
