package timer

// SelectActive chooses the timer for live display. A public timer wins
// outright; otherwise the personal timer with the latest reset instant.
// With equal reset instants the earlier record keeps its place, so the
// choice is stable on input order. Returns nil when there is nothing to
// display.
func SelectActive(public *Record, personal []Record) *ActiveTimer {
	if public != nil {
		a := public.Active()

		return &a
	}

	var picked *Record
	for i := range personal {
		if picked == nil || personal[i].ResetInstant.After(picked.ResetInstant) {
			picked = &personal[i]
		}
	}

	if picked == nil {
		return nil
	}

	a := picked.Active()

	return &a
}
