package value

import (
	"fmt"
	"slices"

	"git.appkode.ru/pub/go/failure"

	"lead_qualifier/pkg/errcodes"
)

type PropertyType string

const (
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeVilla     PropertyType = "Villa"
	PropertyTypeStudio    PropertyType = "Studio"
)

func PropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTypeApartment,
		PropertyTypeHouse,
		PropertyTypeTownhouse,
		PropertyTypeVilla,
		PropertyTypeStudio,
	}
}

func (p PropertyType) String() string {
	return string(p)
}

func (p PropertyType) Rank() int {
	return slices.Index(PropertyTypes(), p)
}

func ParsePropertyType(s string) (PropertyType, error) {
	p := PropertyType(s)
	if p.Rank() < 0 {
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown property type %q", s),
			failure.WithCode(errcodes.InvalidPropertyType),
			failure.WithDescription("Unknown property type"),
		)
	}

	return p, nil
}
