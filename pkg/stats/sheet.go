package stats

const (
	// MinValue and MaxValue bound every stat at all times.
	MinValue = 0
	MaxValue = 100

	initialValueStat   = 10
	initialProblemStat = 0
)

// Sheet holds the current value of each tracked stat.
// Keys absent from the map are treated as 0.
type Sheet map[Key]int

// Initial returns the stat sheet for a new session:
// all value stats at 10, all problem stats at 0.
func Initial() Sheet {
	s := make(Sheet, len(Values)+len(Problems))
	for _, k := range Values {
		s[k] = initialValueStat
	}
	for _, k := range Problems {
		s[k] = initialProblemStat
	}
	return s
}

// Clone returns a copy of the sheet.
func (s Sheet) Clone() Sheet {
	c := make(Sheet, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Apply merges a delta map from the model into the sheet. Raw keys are
// resolved through the alias table; unresolvable keys are skipped and
// returned so the caller can log them. Each applied value is clamped to
// [MinValue, MaxValue]. Deltas are independent per key, so the result
// does not depend on map iteration order.
func (s Sheet) Apply(changes map[string]int) (skipped []string) {
	for raw, delta := range changes {
		key, ok := Resolve(raw)
		if !ok {
			skipped = append(skipped, raw)
			continue
		}
		s[key] = clamp(s[key] + delta)
	}
	return skipped
}

func clamp(v int) int {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}
