package conventional

import "time"

// TimestampLayout is the layout of the timestamp appended to commit subjects
const TimestampLayout = "2006-01-02 15:04"

// Format renders m as a commit message, appending " (YYYY-MM-DD HH:MM)" when withTimestamp is set
func Format(m Message, now time.Time, withTimestamp bool) string {
	if !withTimestamp {
		return m.String()
	}
	return m.String() + " (" + now.Format(TimestampLayout) + ")"
}
