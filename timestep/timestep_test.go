package timestep

import (
	"math"
	"testing"

	"github.com/Vini9-6/solucao-edp/expr"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heatParams(steps int) *HeatParams {
	return &HeatParams{Params{
		F:       "0",
		U0:      "sin(pi*x)",
		Domain:  wr.Domain{A: 0, B: 1},
		NPoints: 11,
		Dt:      0.01,
		Steps:   steps,
		Scheme:  wr.RayleighRitz,
	}}
}

func waveParams(steps int) *WaveParams {
	return &WaveParams{
		Params: Params{
			F:       "1",
			U0:      "x*(1 - x)",
			Domain:  wr.Domain{A: 0, B: 1},
			UA:      1,
			UB:      2,
			NPoints: 9,
			Dt:      0.1,
			Steps:   steps,
			Scheme:  wr.RayleighRitz,
		},
		V0:     "1",
		Lambda: 1,
	}
}

func TestInterpIndices(t *testing.T) {
	var tests = []struct {
		N, K int
		Want []int
	}{
		{11, 6, []int{0, 2, 4, 6, 8, 10}},
		{10, 6, []int{0, 1, 3, 5, 7, 9}},
		{4, 4, []int{0, 1, 2, 3}},
		{5, 5, []int{0, 1, 2, 3, 4}},
	}
	for _, test := range tests {
		assert.Equal(t, test.Want, interpIndices(test.N, test.K), "n=%v k=%v", test.N, test.K)
	}
}

func TestHeatLength(t *testing.T) {
	var s wr.Solver
	for _, steps := range []int{0, 1, 4} {
		for _, scheme := range wr.Schemes {
			p := heatParams(steps)
			p.Scheme = scheme
			series, err := Heat(&s, p)
			require.NoError(t, err, "%v steps=%v", scheme, steps)
			require.Len(t, series.Snapshots, steps+1)
			require.Len(t, series.Times, steps+1)
			for _, u := range series.Snapshots {
				assert.Len(t, u, p.NPoints)
			}

			want, err := expr.Sample(expr.MustParse("sin(pi*x)"), series.X)
			require.NoError(t, err)
			assert.Equal(t, want, series.Snapshots[0], "%v: first snapshot is the initial condition", scheme)
			assert.InDelta(t, float64(steps)*p.Dt, series.Times[steps], 1e-12)
		}
	}
}

func TestHeatDecay(t *testing.T) {
	// One implicit Euler step damps the first sine mode by 1/(1 + pi^2 dt).
	var s wr.Solver
	p := heatParams(1)
	series, err := Heat(&s, p)
	require.NoError(t, err)

	mid := series.Snapshots[1][5]
	want := 1 / (1 + math.Pi*math.Pi*p.Dt)
	if math.Abs(mid-want) > 5e-3 {
		t.Errorf("FAIL midpoint after one step: want %v, got %v", want, mid)
	} else {
		t.Logf("     midpoint after one step: %v (want %v)", mid, want)
	}
	assert.InDelta(t, 0, series.Snapshots[1][0], 1e-12)
	assert.InDelta(t, 0, series.Snapshots[1][10], 1e-12)
}

func TestWaveBootstrap(t *testing.T) {
	var s wr.Solver
	p := waveParams(1)
	series, err := Wave(&s, p)
	require.NoError(t, err)
	require.Len(t, series.Snapshots, 2)

	for i, x := range series.X {
		lift := 1 + x
		u0 := x * (1 - x)
		assert.InDelta(t, u0+lift, series.Snapshots[0][i], 1e-12)
		assert.InDelta(t, u0+p.Dt+lift, series.Snapshots[1][i], 1e-12)
	}

	p.Steps = 0
	series, err = Wave(&s, p)
	require.NoError(t, err)
	assert.Len(t, series.Snapshots, 1)
}

func TestWaveIgnoresHistory(t *testing.T) {
	// Steps past the bootstrap solve the same stationary problem every time,
	// so they neither change from step to step nor depend on u0 or v0. A
	// recurrence that really uses u^n and u^(n-1) fails this test.
	var s wr.Solver
	p := waveParams(4)
	series, err := Wave(&s, p)
	require.NoError(t, err)
	require.Len(t, series.Snapshots, 5)
	assert.Equal(t, series.Snapshots[2], series.Snapshots[3])
	assert.Equal(t, series.Snapshots[3], series.Snapshots[4])

	q := waveParams(4)
	q.U0 = "sin(pi*x)"
	q.V0 = "0"
	other, err := Wave(&s, q)
	require.NoError(t, err)
	assert.Equal(t, series.Snapshots[2], other.Snapshots[2])
	if diff := cmp.Diff(series.Snapshots[0], other.Snapshots[0], cmpopts.EquateApprox(0, 1e-12)); diff == "" {
		t.Errorf("FAIL different initial conditions gave the same first snapshot")
	}
}

func TestWaveLength(t *testing.T) {
	var s wr.Solver
	for _, steps := range []int{0, 1, 2, 5} {
		for _, scheme := range wr.Schemes {
			p := waveParams(steps)
			p.Scheme = scheme
			series, err := Wave(&s, p)
			require.NoError(t, err, "%v steps=%v", scheme, steps)
			assert.Len(t, series.Snapshots, steps+1, "%v steps=%v", scheme, steps)
		}
	}
}

func TestInvalidParams(t *testing.T) {
	var tests = []struct {
		Name     string
		Modify   func(p *WaveParams)
		Sentinel error
	}{
		{"array source", func(p *WaveParams) { p.F = []float64{1, 2, 3} }, expr.ErrNotSymbolic},
		{"array initial condition", func(p *WaveParams) { p.U0 = []any{0.0, 1.0} }, expr.ErrNotSymbolic},
		{"missing velocity", func(p *WaveParams) { p.V0 = nil }, expr.ErrNotSymbolic},
		{"bad source", func(p *WaveParams) { p.F = "sin(" }, expr.ErrParse},
		{"zero dt", func(p *WaveParams) { p.Dt = 0 }, nil},
		{"negative dt", func(p *WaveParams) { p.Dt = -0.1 }, nil},
		{"nan dt", func(p *WaveParams) { p.Dt = math.NaN() }, nil},
		{"negative steps", func(p *WaveParams) { p.Steps = -1 }, nil},
		{"few points", func(p *WaveParams) { p.NPoints = 3 }, nil},
		{"empty domain", func(p *WaveParams) { p.Domain = wr.Domain{A: 1, B: 1} }, nil},
		{"nan lambda", func(p *WaveParams) { p.Lambda = math.NaN() }, nil},
		{"infinite lambda", func(p *WaveParams) { p.Lambda = math.Inf(-1) }, nil},
	}
	waveOnly := map[string]bool{"missing velocity": true, "nan lambda": true, "infinite lambda": true}

	var s wr.Solver
	for i, test := range tests {
		p := waveParams(3)
		test.Modify(p)
		_, err := Wave(&s, p)
		ok := errors.Is(err, wr.ErrInvalidInput)
		if test.Sentinel != nil {
			ok = ok && errors.Is(err, test.Sentinel)
		}
		if !ok {
			t.Errorf("FAIL case %v (%v): got %v", i+1, test.Name, err)
		} else {
			t.Logf("     case %v (%v): %v", i+1, test.Name, err)
		}

		// the heat solver shares the validation of the common parameters
		if waveOnly[test.Name] {
			continue
		}
		_, err = Heat(&s, &HeatParams{Params: p.Params})
		assert.True(t, errors.Is(err, wr.ErrInvalidInput), "heat case %v (%v): got %v", i+1, test.Name, err)
	}
}
