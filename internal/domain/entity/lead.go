package entity

import (
	"time"

	"lead_qualifier/internal/domain/value"
)

// DateLayout is the calendar date format of CreatedDate.
const DateLayout = time.DateOnly

// Lead синтетическая карточка потенциального клиента.
type Lead struct {
	ID           int
	Name         string
	Email        string
	BudgetMin    int
	BudgetMax    int
	Location     value.Location
	Timeline     value.Timeline
	PropertyType value.PropertyType
	Score        int
	Qualified    bool
	Urgency      value.Urgency
	CreatedDate  time.Time
}

// Date returns CreatedDate as YYYY-MM-DD.
func (l Lead) Date() string {
	return l.CreatedDate.Format(DateLayout)
}
