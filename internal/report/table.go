package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/roach88/ecoquery/internal/query"
)

// RenderTable writes entries as a bordered table with a rank column.
func (p *Printer) RenderTable(w io.Writer, title string, entries []query.Entry, unit string) error {
	if title != "" {
		if _, err := io.WriteString(w, title+"\n"); err != nil {
			return err
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Entity", "Value", "Unit"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})
	for i, e := range entries {
		table.Append([]string{strconv.Itoa(i + 1), e.Entity, p.Number(e.Value), unit})
	}
	table.Render()
	return nil
}
