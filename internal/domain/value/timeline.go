package value

import (
	"fmt"
	"slices"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/pkg/errcodes"
)

// Timeline is the purchase horizon bucket declared by a lead.
type Timeline string

const (
	Timeline1To3Months   Timeline = "1-3 months"
	Timeline3To6Months   Timeline = "3-6 months"
	Timeline6To12Months  Timeline = "6-12 months"
	Timeline12PlusMonths Timeline = "12+ months"
)

// Timelines returns every timeline from the most to the least urgent.
func Timelines() []Timeline {
	return []Timeline{
		Timeline1To3Months,
		Timeline3To6Months,
		Timeline6To12Months,
		Timeline12PlusMonths,
	}
}

func (t Timeline) String() string {
	return string(t)
}

func (t Timeline) Rank() int {
	return slices.Index(Timelines(), t)
}

func ParseTimeline(s string) (Timeline, error) {
	t := Timeline(s)
	if t.Rank() < 0 {
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown timeline %q", s),
			failure.WithCode(errcodes.InvalidTimeline),
			failure.WithDescription("Unknown timeline"),
		)
	}

	return t, nil
}
