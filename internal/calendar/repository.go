package calendar

import (
	"time"

	"github.com/google/uuid"
)

// Repository holds the time-block collection in memory. All access is
// synchronous; the caller (the TUI event loop) is the serializer, so there
// is no locking here. Every mutation replaces the backing slice rather than
// editing it in place, so snapshots handed to observers stay stable.
type Repository struct {
	blocks    []TimeBlock
	observers []func([]TimeBlock)

	now func() time.Time // injectable for tests
}

// NewRepository returns an empty repository.
func NewRepository() *Repository {
	return &Repository{now: time.Now}
}

// OnChange registers fn to run after every mutation with a snapshot of the
// full collection. Persistence hangs off this hook.
func (r *Repository) OnChange(fn func([]TimeBlock)) {
	r.observers = append(r.observers, fn)
}

func (r *Repository) notify() {
	for _, fn := range r.observers {
		fn(r.Blocks())
	}
}

// Load replaces the collection with persisted state. Observers are not
// notified; loading is not a user mutation.
func (r *Repository) Load(blocks []TimeBlock) {
	r.blocks = append([]TimeBlock(nil), blocks...)
}

// Blocks returns a snapshot of the collection.
func (r *Repository) Blocks() []TimeBlock {
	return append([]TimeBlock(nil), r.blocks...)
}

// Get returns the block with the given id, if present.
func (r *Repository) Get(id string) (TimeBlock, bool) {
	for _, b := range r.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return TimeBlock{}, false
}

// Create builds a TimeBlock from the form, appends it, and, for recurring
// templates, expands future instances before returning. The returned block
// is the template (or the single block), never a generated instance.
func (r *Repository) Create(form BlockForm) TimeBlock {
	now := r.now()
	b := TimeBlock{
		ID:              uuid.NewString(),
		Title:           form.Title,
		Description:     form.Description,
		Date:            form.Date,
		StartTime:       form.StartTime,
		DurationMinutes: form.DurationMinutes,
		Type:            form.Type,
		Icon:            form.Icon,
		Color:           form.Color,
		LinkedItemType:  form.LinkedItemType,
		LinkedItemID:    form.LinkedItemID,
		ReminderMinutes: form.ReminderMinutes,
		Status:          StatusScheduled,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if b.Icon == "" {
		b.Icon = DefaultIcon(b.Type)
	}
	if b.Color == "" {
		b.Color = DefaultColor(b.Type)
	}
	if form.IsRecurring {
		b.IsRecurring = true
		b.RecurrenceType = form.RecurrenceType
		b.RecurrenceInterval = form.RecurrenceInterval
		if b.RecurrenceInterval < 1 {
			// A zero interval would never advance the cursor; normalize
			// here so expansion terminates on the window, not the cap.
			b.RecurrenceInterval = 1
		}
		b.RecurrenceEndDate = form.RecurrenceEndDate
		b.RecurrenceExceptions = append([]string(nil), form.RecurrenceExceptions...)
	}

	next := append(append([]TimeBlock(nil), r.blocks...), b)
	if b.IsRecurring {
		next = append(next, expandTemplate(b, r.now)...)
	}
	r.blocks = next
	r.notify()
	return b
}

// Update merges non-nil patch fields into the matching block and refreshes
// UpdatedAt. Unknown ids are a silent no-op; callers treat edits as
// idempotent UI actions.
func (r *Repository) Update(id string, patch BlockPatch) {
	idx := r.indexOf(id)
	if idx < 0 {
		return
	}
	next := append([]TimeBlock(nil), r.blocks...)
	b := &next[idx]

	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.Date != nil {
		b.Date = *patch.Date
	}
	if patch.StartTime != nil {
		b.StartTime = *patch.StartTime
	}
	if patch.DurationMinutes != nil {
		b.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Type != nil {
		b.Type = *patch.Type
	}
	if patch.Icon != nil {
		b.Icon = *patch.Icon
	}
	if patch.Color != nil {
		b.Color = *patch.Color
	}
	if patch.LinkedItemType != nil {
		b.LinkedItemType = *patch.LinkedItemType
	}
	if patch.LinkedItemID != nil {
		b.LinkedItemID = *patch.LinkedItemID
	}
	if patch.ReminderMinutes != nil {
		v := *patch.ReminderMinutes
		b.ReminderMinutes = &v
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.RecurrenceEndDate != nil {
		b.RecurrenceEndDate = *patch.RecurrenceEndDate
	}
	if patch.RecurrenceExceptions != nil {
		b.RecurrenceExceptions = append([]string(nil), (*patch.RecurrenceExceptions)...)
	}
	b.UpdatedAt = r.now()

	r.blocks = next
	r.notify()
}

// Delete removes the block with the given id. Deleting a recurring template
// first removes every generated instance that points back at it. Unknown
// ids are a silent no-op.
func (r *Repository) Delete(id string) {
	b, ok := r.Get(id)
	if !ok {
		return
	}

	next := make([]TimeBlock, 0, len(r.blocks))
	for _, blk := range r.blocks {
		if blk.ID == id {
			continue
		}
		if b.IsRecurring && blk.OriginalEventID == id {
			continue
		}
		next = append(next, blk)
	}
	r.blocks = next
	r.notify()
}

// ToggleCompletion flips a block between scheduled and completed. Blocks in
// in_progress or cancelled are left alone; those states are only reachable
// and leavable through Update.
func (r *Repository) ToggleCompletion(id string) {
	idx := r.indexOf(id)
	if idx < 0 {
		return
	}
	next := append([]TimeBlock(nil), r.blocks...)
	b := &next[idx]

	switch b.Status {
	case StatusCompleted:
		b.Status = StatusScheduled
	case StatusScheduled:
		b.Status = StatusCompleted
	default:
		return
	}
	b.UpdatedAt = r.now()

	r.blocks = next
	r.notify()
}

func (r *Repository) indexOf(id string) int {
	for i, b := range r.blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}
