// Package present formats notebooks and notes for people: greetings, dates,
// relative posting times and an HTML rendering of the whole document.
package present

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Greeting returns the salutation for an hour of the day (0-23).
func Greeting(hour int) string {
	var part string
	switch {
	case hour < 5:
		part = "Night"
	case hour < 12:
		part = "Morning"
	case hour < 15:
		part = "Noon"
	case hour < 17:
		part = "Afternoon"
	case hour < 20:
		part = "Evening"
	default:
		part = "Night"
	}
	return "Good " + part
}

// CurrentDate formats t like "Mon, Jan 02 2006".
func CurrentDate(t time.Time) string {
	return strings.Replace(t.Format("Mon Jan 02 2006"), " ", ", ", 1)
}

// RelativeTime describes postedOn (Unix milliseconds) relative to now.
func RelativeTime(postedOn int64, now time.Time) string {
	posted := time.UnixMilli(postedOn)
	if now.Sub(posted) < time.Minute && now.Sub(posted) >= 0 {
		return "Just now"
	}
	return humanize.RelTime(posted, now, "ago", "from now")
}
