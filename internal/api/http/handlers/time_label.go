package handlers

import (
	"time"

	"github.com/xeonx/timeago"
)

const justNow = "Justo ahora"

var spanishTimeago = timeago.Config{
	PastPrefix:   "hace ",
	FuturePrefix: "dentro de ",
	Periods: []timeago.FormatPeriod{
		{D: time.Minute, One: "un minuto", Many: "%d minutos"},
		{D: time.Hour, One: "una hora", Many: "%d horas"},
		{D: 24 * time.Hour, One: "un día", Many: "%d días"},
	},
	Zero:          justNow,
	Max:           7 * 24 * time.Hour,
	DefaultLayout: "02/01/2006",
}

// relativeLabel formats t relative to now for display. Anything under a
// minute old, or slightly in the future due to clock skew, is "Justo ahora".
func relativeLabel(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.Sub(t) < time.Minute {
		return justNow
	}
	return spanishTimeago.FormatReference(t, now)
}
