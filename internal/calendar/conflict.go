package calendar

// HasConflict reports whether a candidate block on date, starting at start
// for duration minutes, overlaps any existing block on the same date.
// Intervals are closed-open: [s1,e1) and [s2,e2) overlap iff s1 < e2 and
// s2 < e1, so back-to-back blocks do not conflict. excludeID skips one
// block, used when editing a block against itself.
//
// The check is advisory and existential: it answers yes/no on the first
// overlap found, and nothing stops a caller from persisting a conflicting
// block anyway.
func (r *Repository) HasConflict(date, start string, duration int, excludeID string) bool {
	s1 := TimeToMinutes(start)
	e1 := s1 + duration

	for _, b := range r.blocks {
		if b.ID == excludeID || b.Date != date {
			continue
		}
		s2 := TimeToMinutes(b.StartTime)
		e2 := s2 + b.DurationMinutes
		if s1 < e2 && s2 < e1 {
			return true
		}
	}
	return false
}
