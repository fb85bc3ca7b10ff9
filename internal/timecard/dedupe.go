package timecard

// Dedupe collapses events that share an employee and calendar minute, keeping
// the first encountered. Idempotent: running it over its own output returns
// the same set.
func Dedupe(events []Event) []Event {
	if len(events) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(events))
	out := make([]Event, 0, len(events))
	for _, event := range events {
		key := event.MinuteKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, event)
	}
	return out
}
