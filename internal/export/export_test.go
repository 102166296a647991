package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sadopc/dayblock/internal/calendar"
)

func sampleBlocks() []calendar.TimeBlock {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	reminder := 5

	return []calendar.TimeBlock{
		{
			ID:              "blk-1",
			Title:           "Deep work",
			Description:     "feature branch",
			Date:            "2025-03-10",
			StartTime:       "09:00",
			DurationMinutes: 90,
			Type:            calendar.BlockFocus,
			Icon:            "🎯",
			Color:           "#6C63FF",
			LinkedItemType:  calendar.LinkedTask,
			LinkedItemID:    "task-4",
			ReminderMinutes: &reminder,
			Status:          calendar.StatusCompleted,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:                   "blk-2",
			Title:                "Weekly review",
			Date:                 "2025-01-06",
			StartTime:            "17:00",
			DurationMinutes:      30,
			Type:                 calendar.BlockAdmin,
			Icon:                 "📋",
			Color:                "#F39C12",
			Status:               calendar.StatusScheduled,
			IsRecurring:          true,
			RecurrenceType:       calendar.RecurWeekly,
			RecurrenceInterval:   1,
			RecurrenceEndDate:    "2025-06-01",
			RecurrenceExceptions: []string{"2025-01-20"},
			CreatedAt:            now,
			UpdatedAt:            now,
		},
		{
			ID:              "blk-3",
			Title:           "Weekly review",
			Date:            "2025-01-13",
			StartTime:       "17:00",
			DurationMinutes: 30,
			Type:            calendar.BlockAdmin,
			Icon:            "📋",
			Color:           "#F39C12",
			Status:          calendar.StatusScheduled,
			OriginalEventID: "blk-2",
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

// ============================================================
// JSON
// ============================================================

func TestJSONRoundTrip(t *testing.T) {
	blocks := sampleBlocks()
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := ToJSON(blocks, path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := FromJSON(path)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}

	if !reflect.DeepEqual(blocks, got) {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", blocks, got)
	}
}

func TestJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := ToJSON(nil, path); err != nil {
		t.Fatal(err)
	}
	got, err := FromJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no blocks, got %d", len(got))
	}
}

func TestFromJSONBadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	if err := os.WriteFile(path, []byte(`{"schema_version": 99, "time_blocks": []}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := FromJSON(path); err == nil {
		t.Fatal("expected error for unknown schema version")
	}
}

func TestFromJSONMissingFile(t *testing.T) {
	if _, err := FromJSON(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	blocks := sampleBlocks()
	path := filepath.Join(t.TempDir(), "blocks.csv")

	if err := ToCSV(blocks, path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// header + 3 data rows
	if len(records) != 4 {
		t.Fatalf("expected 4 rows (1 header + 3 data), got %d", len(records))
	}

	row := records[1]
	if row[0] != "blk-1" {
		t.Fatalf("ID = %q, want blk-1", row[0])
	}
	if row[4] != "10:30" {
		t.Fatalf("End = %q, want 10:30", row[4])
	}
	if row[8] != "task:task-4" {
		t.Fatalf("Linked = %q, want task:task-4", row[8])
	}

	tmplRow := records[2]
	if tmplRow[9] != "weekly x1 except 2025-01-20" {
		t.Fatalf("Recurring = %q", tmplRow[9])
	}

	instRow := records[3]
	if instRow[10] != "blk-2" {
		t.Fatalf("Template = %q, want blk-2", instRow[10])
	}
}

func TestToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := ToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	r := csv.NewReader(f)
	records, _ := r.ReadAll()
	if len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}
