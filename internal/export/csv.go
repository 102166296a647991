package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/sadopc/dayblock/internal/calendar"
)

// ToCSV writes the block list as a spreadsheet-friendly table.
func ToCSV(blocks []calendar.TimeBlock, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	header := []string{"ID", "Title", "Date", "Start", "End", "Duration (min)", "Type", "Status", "Linked", "Recurring", "Template"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, b := range blocks {
		linked := ""
		if b.LinkedItemType != "" {
			linked = fmt.Sprintf("%s:%s", b.LinkedItemType, b.LinkedItemID)
		}
		recurring := ""
		if b.IsRecurring {
			recurring = fmt.Sprintf("%s x%d", b.RecurrenceType, b.RecurrenceInterval)
			if len(b.RecurrenceExceptions) > 0 {
				recurring += " except " + strings.Join(b.RecurrenceExceptions, ";")
			}
		}

		row := []string{
			b.ID,
			b.Title,
			b.Date,
			b.StartTime,
			b.EndTime(),
			fmt.Sprintf("%d", b.DurationMinutes),
			string(b.Type),
			string(b.Status),
			linked,
			recurring,
			b.OriginalEventID,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
