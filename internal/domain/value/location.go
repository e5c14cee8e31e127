package value

import (
	"fmt"
	"slices"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/pkg/errcodes"
)

type Location string

const (
	LocationSydney    Location = "Sydney"
	LocationMelbourne Location = "Melbourne"
	LocationBrisbane  Location = "Brisbane"
	LocationPerth     Location = "Perth"
	LocationAdelaide  Location = "Adelaide"
	LocationCanberra  Location = "Canberra"
)

// Locations returns every location in canonical order.
func Locations() []Location {
	return []Location{
		LocationSydney,
		LocationMelbourne,
		LocationBrisbane,
		LocationPerth,
		LocationAdelaide,
		LocationCanberra,
	}
}

func (l Location) String() string {
	return string(l)
}

// Rank is the position of the location in canonical order, -1 if unknown.
func (l Location) Rank() int {
	return slices.Index(Locations(), l)
}

func ParseLocation(s string) (Location, error) {
	l := Location(s)
	if l.Rank() < 0 {
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown location %q", s),
			failure.WithCode(errcodes.InvalidLocation),
			failure.WithDescription("Unknown location"),
		)
	}

	return l, nil
}
