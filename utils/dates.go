// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// RelativeDay labels an appointment date the way the dashboards show it.
func RelativeDay(date string, now time.Time) string {
	d, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return date
	}
	switch n := DaysBetween(now, d); {
	case n == 0:
		return "Hoy"
	case n == 1:
		return "Mañana"
	case n == -1:
		return "Ayer"
	case n > 1 && n < 7:
		return fmt.Sprintf("En %d días", n)
	}
	return d.Format("02/01/2006")
}
