package availability

const DefaultStepMinutes = 30

// GenerateSlots returns open, open+step, ... while strictly before close.
// Whether a service actually fits before close is decided by the caller.
func GenerateSlots(open, close WallClock, stepMinutes int) []WallClock {
	if stepMinutes <= 0 || !open.Before(close) {
		return nil
	}

	slots := make([]WallClock, 0, (close.Minutes()-open.Minutes()+stepMinutes-1)/stepMinutes)
	for s := open; s.Before(close); s = s.Add(stepMinutes) {
		slots = append(slots, s)
	}
	return slots
}
