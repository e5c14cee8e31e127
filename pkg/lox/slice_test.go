package lox_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"lead_qualifier/pkg/lox"
)

func TestMapErr(t *testing.T) {
	rq := require.New(t)

	got, err := lox.MapErr([]string{"1", "2"}, strconv.Atoi)
	rq.NoError(err)
	rq.Equal([]int{1, 2}, got)

	got, err = lox.MapErr([]string{"1", "x"}, strconv.Atoi)
	rq.Error(err)
	rq.Nil(got)

	got, err = lox.MapErr([]string{}, func(string) (int, error) { return 0, errors.New("never") })
	rq.NoError(err)
	rq.Empty(got)
	rq.NotNil(got)
}

func TestStringify(t *testing.T) {
	rq := require.New(t)

	type city string

	rq.Equal([]string{"Perth", "Sydney"}, lox.Stringify([]city{"Perth", "Sydney"}))
}
