package calendar

import "time"

// BlockType categorizes a time block. Purely descriptive; it only drives
// the default icon and color.
type BlockType string

const (
	BlockFocus    BlockType = "focus"
	BlockMeeting  BlockType = "meeting"
	BlockLearning BlockType = "learning"
	BlockBreak    BlockType = "break"
	BlockCreative BlockType = "creative"
	BlockAdmin    BlockType = "admin"
)

// BlockTypes lists every block type in display order.
var BlockTypes = []BlockType{BlockFocus, BlockMeeting, BlockLearning, BlockBreak, BlockCreative, BlockAdmin}

// BlockStatus is the lifecycle state of a time block.
type BlockStatus string

const (
	StatusScheduled  BlockStatus = "scheduled"
	StatusInProgress BlockStatus = "in_progress"
	StatusCompleted  BlockStatus = "completed"
	StatusCancelled  BlockStatus = "cancelled"
)

// RecurrenceType is the cadence of a recurring template.
type RecurrenceType string

const (
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
)

// LinkedItemType identifies what kind of item a block points at. The
// reference is weak: this package never resolves the linked id.
type LinkedItemType string

const (
	LinkedGoal  LinkedItemType = "goal"
	LinkedTask  LinkedItemType = "task"
	LinkedHabit LinkedItemType = "habit"
)

// MinDurationMinutes is the smallest block the planner accepts.
const MinDurationMinutes = 15

// TimeBlock is the persistent scheduling entity. Dates and times are plain
// local strings ("2006-01-02" / "15:04"); no timezone conversion happens
// anywhere in this package.
type TimeBlock struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	DurationMinutes int        `json:"duration_minutes"`
	Type            BlockType  `json:"block_type"`
	Icon            string     `json:"icon"`
	Color           string     `json:"color"`

	LinkedItemType  LinkedItemType `json:"linked_item_type,omitempty"`
	LinkedItemID    string         `json:"linked_item_id,omitempty"`
	ReminderMinutes *int           `json:"reminder_minutes,omitempty"`

	Status BlockStatus `json:"status"`

	// Recurrence. A block with IsRecurring=true is a template; generated
	// instances have IsRecurring=false and OriginalEventID set.
	IsRecurring          bool           `json:"is_recurring,omitempty"`
	RecurrenceType       RecurrenceType `json:"recurrence_type,omitempty"`
	RecurrenceInterval   int            `json:"recurrence_interval,omitempty"`
	RecurrenceEndDate    string         `json:"recurrence_end_date,omitempty"`
	OriginalEventID      string         `json:"original_event_id,omitempty"`
	RecurrenceExceptions []string       `json:"recurrence_exceptions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsTemplate reports whether b is a recurring template.
func (b TimeBlock) IsTemplate() bool {
	return b.IsRecurring
}

// EndTime returns the block's end time of day, wrapping past midnight.
func (b TimeBlock) EndTime() string {
	return AddMinutes(b.StartTime, b.DurationMinutes)
}

// BlockForm is the creation input handed to Repository.Create. Field
// validation (well-formed times, duration >= 15) happens at the form
// boundary, not here.
type BlockForm struct {
	Title           string
	Description     string
	Date            string
	StartTime       string
	DurationMinutes int
	Type            BlockType
	Icon            string
	Color           string

	LinkedItemType  LinkedItemType
	LinkedItemID    string
	ReminderMinutes *int

	IsRecurring          bool
	RecurrenceType       RecurrenceType
	RecurrenceInterval   int
	RecurrenceEndDate    string
	RecurrenceExceptions []string
}

// BlockPatch is a partial update; nil fields are left untouched.
type BlockPatch struct {
	Title           *string
	Description     *string
	Date            *string
	StartTime       *string
	DurationMinutes *int
	Type            *BlockType
	Icon            *string
	Color           *string
	LinkedItemType  *LinkedItemType
	LinkedItemID    *string
	ReminderMinutes *int
	Status          *BlockStatus

	RecurrenceEndDate    *string
	RecurrenceExceptions *[]string
}

// CalendarEvent is the display projection of a TimeBlock for one day.
// It is recomputed on every query and never persisted.
type CalendarEvent struct {
	ID          string
	Title       string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Type        string // always "timeblock"
	Icon        string
	Color       string
	Completed   bool
	LinkedID    string // originating TimeBlock id
}

// DayStats aggregates a day's blocks by what they link to.
type DayStats struct {
	TotalTasks     int
	TotalHabits    int
	CompletedItems int
}

// DayView is one day's events plus aggregate stats.
type DayView struct {
	Date   string
	Events []CalendarEvent
	Stats  DayStats
}

// WeekView is seven consecutive day views starting on Sunday.
type WeekView struct {
	WeekStart string
	WeekEnd   string
	Days      [7]DayView
}

// MonthDay is one cell of the 6x7 month grid.
type MonthDay struct {
	DayView
	DayNumber      int
	IsCurrentMonth bool
	IsToday        bool
}

// MonthView is a fixed 42-cell grid starting on the Sunday on or before
// the first of the month.
type MonthView struct {
	Year  int
	Month time.Month
	Days  [42]MonthDay
}

// ViewMode selects the calendar granularity.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
	ViewMonth
)

func (v ViewMode) String() string {
	switch v {
	case ViewDay:
		return "day"
	case ViewWeek:
		return "week"
	case ViewMonth:
		return "month"
	}
	return "unknown"
}

// Default presentation per block type, used when the form leaves icon or
// color empty.
var blockDefaults = map[BlockType]struct {
	icon  string
	color string
}{
	BlockFocus:    {"🎯", "#6C63FF"},
	BlockMeeting:  {"👥", "#3498DB"},
	BlockLearning: {"📚", "#2EC4B6"},
	BlockBreak:    {"☕", "#2ECC71"},
	BlockCreative: {"🎨", "#9B59B6"},
	BlockAdmin:    {"📋", "#F39C12"},
}

// DefaultIcon returns the fallback icon for a block type.
func DefaultIcon(t BlockType) string {
	if d, ok := blockDefaults[t]; ok {
		return d.icon
	}
	return "📅"
}

// DefaultColor returns the fallback color for a block type.
func DefaultColor(t BlockType) string {
	if d, ok := blockDefaults[t]; ok {
		return d.color
	}
	return "#6C63FF"
}
