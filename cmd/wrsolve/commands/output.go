package commands

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/Vini9-6/solucao-edp/compare"
	"github.com/Vini9-6/solucao-edp/internal/config"
	"github.com/Vini9-6/solucao-edp/timestep"
	"github.com/Vini9-6/solucao-edp/wr"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
)

type output struct {
	w    io.Writer
	conf config.OutputConfig
}

func newOutput(w io.Writer, conf config.OutputConfig) *output {
	return &output{w: w, conf: conf}
}

func (o *output) csv() bool { return o.conf.Format == "csv" }

func (o *output) num(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'g', o.conf.Precision, 64)
}

// write renders rows (the first one being the header) as CSV or as a pterm
// table.
func (o *output) write(rows [][]string) error {
	if o.csv() {
		cw := csv.NewWriter(o.w)
		if err := cw.WriteAll(rows); err != nil {
			return errors.Wrap(err, "writing csv")
		}
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(o.w).WithData(pterm.TableData(rows)).Render()
}

func (o *output) solution(sol *wr.Solution) error {
	rows := [][]string{{"x", "u"}}
	for i, x := range sol.X {
		rows = append(rows, []string{o.num(x), o.num(sol.U[i])})
	}
	if err := o.write(rows); err != nil {
		return err
	}
	if o.csv() {
		return nil
	}

	coeffs := [][]string{{"i", "c_i"}}
	for i, c := range sol.Coeffs {
		coeffs = append(coeffs, []string{strconv.Itoa(i + 1), o.num(c)})
	}
	return o.write(coeffs)
}

// series writes one row per time level in table mode and one (t, x, u)
// record per sample in csv mode.
func (o *output) series(s *timestep.Series) error {
	if o.csv() {
		rows := [][]string{{"t", "x", "u"}}
		for k, u := range s.Snapshots {
			for i, x := range s.X {
				rows = append(rows, []string{o.num(s.Times[k]), o.num(x), o.num(u[i])})
			}
		}
		return o.write(rows)
	}

	header := []string{"t \\ x"}
	for _, x := range s.X {
		header = append(header, o.num(x))
	}
	rows := [][]string{header}
	for k, u := range s.Snapshots {
		row := []string{o.num(s.Times[k])}
		for _, v := range u {
			row = append(row, o.num(v))
		}
		rows = append(rows, row)
	}
	return o.write(rows)
}

func (o *output) report(r *compare.Report) error {
	rows := [][]string{{"scheme", "rms exact", "max exact", "rms vs " + r.Reference.String(), "singular"}}
	for _, e := range r.Entries {
		rows = append(rows, []string{
			e.Solution.Scheme.String(),
			o.num(e.RMSExact),
			o.num(e.MaxExact),
			o.num(e.RMSRef),
			strconv.FormatBool(e.Solution.Singular),
		})
	}
	if err := o.write(rows); err != nil {
		return err
	}
	if o.csv() {
		return nil
	}
	return o.write([][]string{
		{"mean", "median", "std dev", "best", "worst"},
		{o.num(r.Summary.Mean), o.num(r.Summary.Median), o.num(r.Summary.StdDev), r.Summary.Best.String(), r.Summary.Worst.String()},
	})
}
