package value_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"lead_qualifier/internal/domain/value"
	"lead_qualifier/pkg/errcodes"
)

func TestUrgencyFromTimeline(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.UrgencyHigh, value.UrgencyFromTimeline(value.Timeline1To3Months))
	rq.Equal(value.UrgencyMedium, value.UrgencyFromTimeline(value.Timeline3To6Months))
	rq.Equal(value.UrgencyLow, value.UrgencyFromTimeline(value.Timeline6To12Months))
	rq.Equal(value.UrgencyLow, value.UrgencyFromTimeline(value.Timeline12PlusMonths))
}

func TestIsQualified(t *testing.T) {
	rq := require.New(t)

	rq.False(value.IsQualified(69))
	rq.True(value.IsQualified(70))
	rq.True(value.IsQualified(100))
	rq.Equal("Yes", value.QualifiedLabel(true))
	rq.Equal("No", value.QualifiedLabel(false))
}

func TestParseQualification(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{"All", "Qualified", "Unqualified"} {
		q, err := value.ParseQualification(s)
		rq.NoError(err)
		rq.Equal(s, q.String())
	}

	_, err := value.ParseQualification("Yes")
	rq.True(failure.IsInvalidArgumentError(err))
	rq.Equal(errcodes.InvalidQualification, failure.Code(err))
}

func TestQualificationMatch(t *testing.T) {
	rq := require.New(t)

	rq.True(value.QualificationAll.Match(true))
	rq.True(value.QualificationAll.Match(false))
	rq.True(value.QualificationQualified.Match(true))
	rq.False(value.QualificationQualified.Match(false))
	rq.True(value.QualificationUnqualified.Match(false))
	rq.False(value.QualificationUnqualified.Match(true))
}

func TestParseEnumerations(t *testing.T) {
	rq := require.New(t)

	for _, l := range value.Locations() {
		parsed, err := value.ParseLocation(l.String())
		rq.NoError(err)
		rq.Equal(l, parsed)
	}

	for _, tl := range value.Timelines() {
		parsed, err := value.ParseTimeline(tl.String())
		rq.NoError(err)
		rq.Equal(tl, parsed)
	}

	_, err := value.ParseLocation("sydney")
	rq.True(failure.IsInvalidArgumentError(err))

	_, err = value.ParseTimeline("2 weeks")
	rq.True(failure.IsInvalidArgumentError(err))

	_, err = value.ParsePropertyType("Castle")
	rq.True(failure.IsInvalidArgumentError(err))
}

func TestNewBudgetRange(t *testing.T) {
	rq := require.New(t)

	r, err := value.NewBudgetRange(200000, 200000)
	rq.NoError(err)
	rq.True(r.Contains(200000))
	rq.False(r.Contains(200001))

	_, err = value.NewBudgetRange(2, 1)
	rq.True(failure.IsInvalidArgumentError(err))
	rq.Equal(errcodes.InvalidBudgetRange, failure.Code(err))
}
