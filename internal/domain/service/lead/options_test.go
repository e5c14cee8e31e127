package lead_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/service/lead"
	"lead_qualifier/internal/domain/value"
)

func TestNewOptions(t *testing.T) {
	rq := require.New(t)

	options := lead.NewOptions(testLeads())

	rq.Equal(entity.Options{
		Locations:     []value.Location{value.LocationSydney, value.LocationMelbourne, value.LocationPerth},
		Timelines:     value.Timelines(),
		PropertyTypes: []value.PropertyType{value.PropertyTypeHouse},
		BudgetMinLow:  200000,
		BudgetMinHigh: 900000,
	}, options)
}

func TestNewOptionsEmpty(t *testing.T) {
	rq := require.New(t)

	options := lead.NewOptions(nil)

	rq.Empty(options.Locations)
	rq.Empty(options.Timelines)
	rq.Empty(options.PropertyTypes)
	rq.Zero(options.BudgetMinLow)
	rq.Zero(options.BudgetMinHigh)
}
