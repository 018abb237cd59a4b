package commands

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func records(t *testing.T, out string) [][]string {
	t.Helper()
	recs, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestSolveCSV(t *testing.T) {
	out, err := run(t, "solve", "--format", "csv", "--scheme", "galerkin",
		"--p=-1", "--f", "sin(pi*x)", "--n-points", "11")
	require.NoError(t, err)

	recs := records(t, out)
	require.Len(t, recs, 12)
	assert.Equal(t, []string{"x", "u"}, recs[0])
	mid, err := strconv.ParseFloat(recs[6][1], 64)
	require.NoError(t, err)
	assert.InDelta(t, 1/(3.141592653589793*3.141592653589793), mid, 1e-5)
}

func TestSolveTable(t *testing.T) {
	out, err := run(t, "solve", "--f", "1", "--n-points", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "c_i")
}

func TestSolveProblemFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
scheme = "colocação"
a = 0.0
b = 2.0
n_points = 6
p = 1
r = 1
f = "x"
`), 0o644))

	out, err := run(t, "solve", "--problem", path, "--format", "csv", "--b", "1")
	require.NoError(t, err)
	recs := records(t, out)
	require.Len(t, recs, 7)
	assert.Equal(t, "1", recs[6][0], "--b overrides the file")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "--format", "csv", "--p=-1", "--f", "sin(pi*x)",
		"--exact", "sin(pi*x)/pi^2", "--schemes", "galerkin,least-squares")
	require.NoError(t, err)
	recs := records(t, out)
	require.Len(t, recs, 3)
	assert.Equal(t, "galerkin", recs[1][0])
	assert.Equal(t, "least-squares", recs[2][0])
	rms, err := strconv.ParseFloat(recs[1][1], 64)
	require.NoError(t, err)
	assert.Less(t, rms, 1e-2)
}

func TestHeatAndWave(t *testing.T) {
	out, err := run(t, "heat", "--format", "csv", "--u0", "sin(pi*x)", "--f", "0",
		"--n-points", "6", "--dt", "0.01", "--steps", "3")
	require.NoError(t, err)
	assert.Len(t, records(t, out), 1+4*6)

	out, err = run(t, "wave", "--format", "csv", "--u0", "x*(1-x)", "--v0", "0", "--f", "0",
		"--n-points", "5", "--dt", "0.1", "--steps", "2", "--lambda", "1")
	require.NoError(t, err)
	assert.Len(t, records(t, out), 1+3*5)

	out, err = run(t, "wave", "--u0", "x", "--v0", "0", "--f", "0", "--n-points", "5", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "t \\ x")
}

func TestZeroSteps(t *testing.T) {
	// an explicit zero is not replaced by the configured step count
	var tests = []struct {
		Name string
		Args []string
	}{
		{"heat", []string{"heat", "--u0", "sin(pi*x)", "--f", "0"}},
		{"wave", []string{"wave", "--u0", "sin(pi*x)", "--v0", "0", "--f", "0"}},
	}
	for i, test := range tests {
		args := append(test.Args, "--format", "csv", "--n-points", "5", "--steps", "0")
		out, err := run(t, args...)
		require.NoError(t, err, test.Name)
		recs := records(t, out)
		if len(recs) != 1+5 || recs[len(recs)-1][0] != "0" {
			t.Errorf("FAIL case %v (%v): got %v records, last %v", i+1, test.Name, len(recs), recs[len(recs)-1])
		} else {
			t.Logf("     case %v (%v): one snapshot", i+1, test.Name)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	var tests = []struct {
		Name string
		Args []string
	}{
		{"unknown scheme", []string{"solve", "--f", "1", "--scheme", "spectral"}},
		{"missing source", []string{"solve"}},
		{"bad expression", []string{"solve", "--f", "sin("}},
		{"few points", []string{"solve", "--f", "1", "--n-points", "3"}},
		{"bad dt", []string{"heat", "--u0", "0", "--f", "0", "--dt", "-1"}},
		{"unknown compare scheme", []string{"compare", "--f", "1", "--schemes", "galerkin,nope"}},
	}
	for i, test := range tests {
		_, err := run(t, test.Args...)
		if !errors.Is(err, wr.ErrInvalidInput) {
			t.Errorf("FAIL case %v (%v): got %v", i+1, test.Name, err)
		} else {
			t.Logf("     case %v (%v): %v", i+1, test.Name, err)
		}
	}

	_, err := run(t, "solve", "--f", "1", "--format", "pdf")
	assert.Error(t, err)
}

// chdir changes the working directory for the rest of the test and restores
// it on cleanup (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
