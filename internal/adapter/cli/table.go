package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"weightlog/internal/domain"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("31"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")).Padding(0, 1)
	evenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("159")).Padding(0, 1)
	oddStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Padding(0, 1)
)

// writeTable prints entries as a two-column Date / Weight table.
func writeTable(w io.Writer, entries []domain.WeightEntry) error {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.DayString(), formatNumber(e.Value)})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenStyle
			default:
				return oddStyle
			}
		}).
		Headers("Date", "Weight(Kg)").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
