package value

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/pkg/errcodes"
)

type SortField string

const (
	SortByScore     SortField = "Score"
	SortByBudgetMin SortField = "Budget_Min"
	SortByName      SortField = "Name"
	SortByDate      SortField = "Date"
)

func (f SortField) String() string {
	return string(f)
}

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortByScore, SortByBudgetMin, SortByName, SortByDate:
		return f, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown sort field %q", s),
			failure.WithCode(errcodes.InvalidSortField),
			failure.WithDescription("Sort field must be one of Score, Budget_Min, Name, Date"),
		)
	}
}

type SortOrder string

const (
	SortDescending SortOrder = "Descending"
	SortAscending  SortOrder = "Ascending"
)

func (o SortOrder) String() string {
	return string(o)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(s); o {
	case SortDescending, SortAscending:
		return o, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown sort order %q", s),
			failure.WithCode(errcodes.InvalidSortOrder),
			failure.WithDescription("Sort order must be Descending or Ascending"),
		)
	}
}
