package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/typerun/internal/model"
)

// RenderSummary prints the final session metrics as an aligned table.
func RenderSummary(w io.Writer, m model.Metrics, elapsed time.Duration) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"WPM", fmt.Sprintf("%d", m.WPM)},
		{"Accuracy", fmt.Sprintf("%d%%", m.Accuracy)},
		{"Words", fmt.Sprintf("%d", m.Words)},
		{"Characters", fmt.Sprintf("%d", m.Chars)},
		{"Errors", fmt.Sprintf("%d", m.Errors)},
		{"Time", elapsed.Round(100 * time.Millisecond).String()},
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
