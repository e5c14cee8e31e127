package generator

import (
	"fmt"
	"math/rand"
	"time"

	"lead_qualifier/internal/domain/entity"
	"lead_qualifier/internal/domain/value"
)

const (
	// DefaultCount is the batch size of the demo dashboard.
	DefaultCount = 76

	budgetMinLow      = 200000
	budgetMinHigh     = 1000000
	budgetSpreadLow   = 100000
	budgetSpreadHigh  = 500000
	createdWindowDays = 350
)

//nolint:gochecknoglobals
var (
	firstNames = []string{
		"James", "Emma", "Oliver", "Sophia", "William", "Ava", "Lucas", "Mia",
		"Noah", "Isabella", "Liam", "Charlotte", "Ethan", "Amelia", "Mason",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Thomas",
	}
)

// DefaultWindowStart is the first day leads can be created on.
func DefaultWindowStart() time.Time {
	return time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
}

type Option func(*Generator)

func WithWindowStart(start time.Time) Option {
	return func(g *Generator) {
		g.windowStart = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	}
}

// Generator производит синтетических лидов. Один и тот же seed даёт
// одинаковую последовательность. Generator не безопасен для конкурентного
// использования.
type Generator struct {
	random      *rand.Rand
	windowStart time.Time
}

func New(seed int64, opts ...Option) *Generator {
	g := &Generator{
		random:      rand.New(rand.NewSource(seed)), //nolint:gosec // synthetic data
		windowStart: DefaultWindowStart(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewRandom seeds the generator from the clock, batches are not reproducible.
func NewRandom(opts ...Option) *Generator {
	return New(time.Now().UnixNano(), opts...)
}

// Generate returns n leads with IDs 1..n in generation order.
func (g *Generator) Generate(n int) []entity.Lead {
	leads := make([]entity.Lead, 0, max(n, 0))

	for i := range max(n, 0) {
		leads = append(leads, g.lead(i+1))
	}

	return leads
}

func (g *Generator) lead(id int) entity.Lead {
	budgetMin := g.between(budgetMinLow, budgetMinHigh)
	budgetMax := budgetMin + g.between(budgetSpreadLow, budgetSpreadHigh)
	location := pick(g.random, value.Locations())
	timeline := pick(g.random, value.Timelines())

	score := Score(budgetMin, location, timeline, g.between(JitterMin, JitterMax))
	created := g.windowStart.AddDate(0, 0, g.between(0, createdWindowDays))

	name := pick(g.random, firstNames) + " " + pick(g.random, lastNames)

	return entity.Lead{
		ID:           id,
		Name:         name,
		Email:        fmt.Sprintf("client%d@example.com", id),
		BudgetMin:    budgetMin,
		BudgetMax:    budgetMax,
		Location:     location,
		Timeline:     timeline,
		PropertyType: pick(g.random, value.PropertyTypes()),
		Score:        score,
		Qualified:    value.IsQualified(score),
		Urgency:      value.UrgencyFromTimeline(timeline),
		CreatedDate:  created,
	}
}

// between returns a uniform integer in [low, high].
func (g *Generator) between(low, high int) int {
	return low + g.random.Intn(high-low+1)
}

func pick[T any](random *rand.Rand, items []T) T {
	return items[random.Intn(len(items))]
}
