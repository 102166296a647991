package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/dayblock/internal/calendar"
)

// schemaVersion tags JSON snapshots; bumped only when the block shape
// changes incompatibly.
const schemaVersion = 1

type jsonSnapshot struct {
	SchemaVersion int                  `json:"schema_version"`
	ExportedAt    string               `json:"exported_at"`
	Count         int                  `json:"count"`
	TimeBlocks    []calendar.TimeBlock `json:"time_blocks"`
}

// ToJSON writes the block list as a versioned snapshot file.
func ToJSON(blocks []calendar.TimeBlock, path string) error {
	snap := jsonSnapshot{
		SchemaVersion: schemaVersion,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		Count:         len(blocks),
		TimeBlocks:    blocks,
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// FromJSON reads a snapshot file back into a block list.
func FromJSON(path string) ([]calendar.TimeBlock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json file: %w", err)
	}

	var snap jsonSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}
	if snap.SchemaVersion != schemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", snap.SchemaVersion)
	}
	return snap.TimeBlocks, nil
}
