package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sadopc/dayblock/internal/calendar"
)

// SaveBlocks rewrites the whole time_blocks table from the given snapshot
// in a single transaction. The repository replaces its collection on every
// mutation, so persistence mirrors that: replace-all, no row diffing.
func (s *Store) SaveBlocks(blocks []calendar.TimeBlock) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM time_blocks`); err != nil {
		return fmt.Errorf("clear blocks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO time_blocks (
			id, title, description, date, start_time, duration_minutes,
			block_type, icon, color, linked_item_type, linked_item_id,
			reminder_minutes, status, is_recurring, recurrence_type,
			recurrence_interval, recurrence_end_date, original_event_id,
			recurrence_exceptions, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range blocks {
		exceptions, err := json.Marshal(b.RecurrenceExceptions)
		if err != nil {
			return fmt.Errorf("marshal exceptions for %s: %w", b.ID, err)
		}

		var reminder any
		if b.ReminderMinutes != nil {
			reminder = *b.ReminderMinutes
		}

		recurring := 0
		if b.IsRecurring {
			recurring = 1
		}

		_, err = stmt.Exec(
			b.ID, b.Title, b.Description, b.Date, b.StartTime, b.DurationMinutes,
			string(b.Type), b.Icon, b.Color, string(b.LinkedItemType), b.LinkedItemID,
			reminder, string(b.Status), recurring, string(b.RecurrenceType),
			b.RecurrenceInterval, b.RecurrenceEndDate, b.OriginalEventID,
			string(exceptions),
			b.CreatedAt.UTC().Format(time.RFC3339),
			b.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert block %s: %w", b.ID, err)
		}
	}

	return tx.Commit()
}

// LoadBlocks reads the persisted block list, ordered by creation time so
// the repository sees the same ordering it saved.
func (s *Store) LoadBlocks() ([]calendar.TimeBlock, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, date, start_time, duration_minutes,
		       block_type, icon, color, linked_item_type, linked_item_id,
		       reminder_minutes, status, is_recurring, recurrence_type,
		       recurrence_interval, recurrence_end_date, original_event_id,
		       recurrence_exceptions, created_at, updated_at
		FROM time_blocks
		ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []calendar.TimeBlock
	for rows.Next() {
		var (
			b          calendar.TimeBlock
			blockType  string
			linked     string
			status     string
			recurType  string
			reminder   sql.NullInt64
			recurring  int
			exceptions string
			createdAt  string
			updatedAt  string
		)
		err := rows.Scan(
			&b.ID, &b.Title, &b.Description, &b.Date, &b.StartTime, &b.DurationMinutes,
			&blockType, &b.Icon, &b.Color, &linked, &b.LinkedItemID,
			&reminder, &status, &recurring, &recurType,
			&b.RecurrenceInterval, &b.RecurrenceEndDate, &b.OriginalEventID,
			&exceptions, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		b.Type = calendar.BlockType(blockType)
		b.LinkedItemType = calendar.LinkedItemType(linked)
		b.Status = calendar.BlockStatus(status)
		b.IsRecurring = recurring == 1
		b.RecurrenceType = calendar.RecurrenceType(recurType)
		if reminder.Valid {
			v := int(reminder.Int64)
			b.ReminderMinutes = &v
		}
		if err := json.Unmarshal([]byte(exceptions), &b.RecurrenceExceptions); err != nil {
			return nil, fmt.Errorf("unmarshal exceptions for %s: %w", b.ID, err)
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		b.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// CountBlocks returns the number of persisted blocks.
func (s *Store) CountBlocks() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM time_blocks`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count blocks: %w", err)
	}
	return n, nil
}
