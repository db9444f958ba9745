package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/SenseUnit/corpusgen/util"
)

func (row Row) Fields() []string {
	return []string{
		row.Dataset,
		string(row.Algorithm),
		strconv.FormatFloat(row.InitTime, 'f', -1, 64),
		strconv.FormatUint(row.StructureSize, 10),
		strconv.FormatUint(row.UncompressedSize, 10),
		strconv.Itoa(row.WordsCount),
		strconv.FormatFloat(row.AvgSearchTime, 'f', -1, 64),
	}
}

func CSVName(eps float64) string {
	return "eps" + strconv.FormatFloat(eps, 'g', -1, 64) + ".csv"
}

// WriteCSV writes one eps<E>.csv file per epsilon into dir.
func (rep *Report) WriteCSV(dir string) ([]string, error) {
	var paths []string
	for _, eps := range rep.Epsilons {
		path, err := util.ResolveIn(dir, CSVName(eps))
		if err != nil {
			return paths, err
		}
		rows := rep.Rows[eps]
		err = util.WriteAtomic(path, func(out io.Writer) error {
			w := csv.NewWriter(out)
			if err := w.Write(RowHeader); err != nil {
				return err
			}
			for _, row := range rows {
				if err := w.Write(row.Fields()); err != nil {
					return err
				}
			}
			w.Flush()
			return w.Error()
		})
		if err != nil {
			return paths, fmt.Errorf("can't write summary for epsilon %g: %w", eps, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Render formats the report as one table per epsilon.
func (rep *Report) Render() string {
	var b strings.Builder
	for _, eps := range rep.Epsilons {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(RowHeader...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, row := range rep.Rows[eps] {
			t.Row(row.Fields()...)
		}
		b.WriteString(titleStyle.Render(fmt.Sprintf("epsilon = %g", eps)))
		b.WriteByte('\n')
		b.WriteString(t.Render())
		b.WriteByte('\n')
	}
	return b.String()
}
