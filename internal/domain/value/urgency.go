package value

import "fmt"

type Urgency string

const (
	UrgencyHigh   Urgency = "High"
	UrgencyMedium Urgency = "Medium"
	UrgencyLow    Urgency = "Low"
)

func (u Urgency) String() string {
	return string(u)
}

// UrgencyFromTimeline maps the four timelines onto three tiers.
// Both "6-12 months" and "12+ months" are Low.
func UrgencyFromTimeline(t Timeline) Urgency {
	switch t {
	case Timeline1To3Months:
		return UrgencyHigh
	case Timeline3To6Months:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

func ParseUrgency(s string) (Urgency, error) {
	switch u := Urgency(s); u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return u, nil
	default:
		return "", fmt.Errorf("unknown urgency %q", s)
	}
}
