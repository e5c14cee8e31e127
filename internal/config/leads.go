package config

import (
	"fmt"
	"strconv"
	"time"
)

type Leads struct {
	Count       int           `env:"LEADS_COUNT" envDefault:"76"`
	Seed        Seed          `env:"LEADS_SEED"`
	WindowStart Date          `env:"LEADS_WINDOW_START" envDefault:"2024-01-01"`
	CacheTTL    time.Duration `env:"LEADS_CACHE_TTL" envDefault:"5m"`
}

// Seed is an optional generator seed. Unset means a clock-based seed.
type Seed struct {
	Value int64
	Set   bool
}

func (s *Seed) UnmarshalText(text []byte) error {
	value, err := strconv.ParseInt(string(text), 10, 64)
	if err != nil {
		return fmt.Errorf("strconv.ParseInt: %w", err)
	}

	s.Value = value
	s.Set = true

	return nil
}

// Pointer returns nil for an unset seed.
func (s Seed) Pointer() *int64 {
	if !s.Set {
		return nil
	}

	value := s.Value

	return &value
}

// Date is a calendar day in YYYY-MM-DD form.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(time.DateOnly, string(text))
	if err != nil {
		return fmt.Errorf("time.Parse: %w", err)
	}

	d.Time = t

	return nil
}
