package wr

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	var tests = []struct {
		lo, hi float64
		n      int
		want   []float64
	}{
		{0, 1, 0, nil},
		{0, 1, 1, []float64{0}},
		{0, 1, 2, []float64{0, 1}},
		{0, 1, 5, []float64{0, .25, .5, .75, 1}},
		{-1, 1, 3, []float64{-1, 0, 1}},
	}
	for _, test := range tests {
		got := Linspace(test.lo, test.hi, test.n)
		assert.Equal(t, test.want, got, "Linspace(%v, %v, %v)", test.lo, test.hi, test.n)
	}
}

func TestQuadLegendre(t *testing.T) {
	var tests = []struct {
		Name     string
		F        func(x float64) (float64, error)
		Min, Max float64
		N        int
		Want     float64
	}{
		{
			Name: "cubic",
			F:    func(x float64) (float64, error) { return x*x*x - 2*x + 1, nil },
			Min:  0, Max: 2, N: 2,
			Want: 2,
		}, {
			// n points integrate polynomials of degree 2n-1 exactly
			Name: "degree 7",
			F:    func(x float64) (float64, error) { return math.Pow(x, 7), nil },
			Min:  -1, Max: 3, N: 4,
			Want: (math.Pow(3, 8) - 1) / 8,
		}, {
			Name: "sine",
			F:    func(x float64) (float64, error) { return math.Sin(x), nil },
			Min:  0, Max: math.Pi, N: 20,
			Want: 2,
		}, {
			Name: "empty interval",
			F:    func(x float64) (float64, error) { return 1, nil },
			Min:  1, Max: 1, N: 5,
			Want: 0,
		},
	}

	for i, test := range tests {
		got, err := QuadLegendre(test.F, test.Min, test.Max, test.N)
		require.NoError(t, err)
		if math.Abs(got-test.Want) > 1e-10 {
			t.Errorf("FAIL case %v (%v): want %v, got %v", i+1, test.Name, test.Want, got)
		} else {
			t.Logf("     case %v (%v): got %v", i+1, test.Name, got)
		}
	}
}

func TestQuadLegendreErrors(t *testing.T) {
	one := func(x float64) (float64, error) { return 1, nil }
	_, err := QuadLegendre(one, 0, 1, 0)
	assert.Error(t, err)
	_, err = QuadLegendre(one, 1, 0, 3)
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = QuadLegendre(func(x float64) (float64, error) { return 0, boom }, 0, 1, 3)
	assert.True(t, errors.Is(err, boom))

	_, err = QuadLegendre(func(x float64) (float64, error) { return math.Inf(1), nil }, 0, 1, 3)
	assert.ErrorContains(t, err, "non-finite")
}
