package render

import (
	"time"

	"github.com/khulnasoft/startpage/internal/landing"
)

// Page is the view model handed to the HTML template.
type Page struct {
	Title           string
	Greeting        string
	Clock           string
	ImageBackground bool
	FirstListIcon   string
	SecondListIcon  string
	FirstList       []Link
	SecondList      []Link
}

// Link is a LinkEntry resolved into anchor attributes.
type Link struct {
	Name   string
	Href   string
	Target string
	Rel    string
}

// GreetingFor picks the greeting for the hour of t:
// night 23..4, morning 5..11, afternoon 12..16, evening 17..22.
func GreetingFor(doc *landing.Document, t time.Time) string {
	switch h := t.Hour(); {
	case h >= 23 || h < 5:
		return doc.GreetingNight
	case h < 12:
		return doc.GreetingMorning
	case h < 17:
		return doc.GreetingAfternoon
	default:
		return doc.GreetingEvening
	}
}

// FormatClock renders t as "15:04" or, in twelve-hour mode, "3:04 PM".
func FormatClock(t time.Time, twelveHour bool) string {
	if twelveHour {
		return t.Format("3:04 PM")
	}
	return t.Format("15:04")
}

// Build resolves the document into the view rendered at time t.
func Build(doc *landing.Document, title string, t time.Time) Page {
	target := doc.Target()
	return Page{
		Title:           title,
		Greeting:        GreetingFor(doc, t),
		Clock:           FormatClock(t, doc.TwelveHourFormat),
		ImageBackground: doc.ImageBackground,
		FirstListIcon:   doc.FirstListIcon,
		SecondListIcon:  doc.SecondListIcon,
		FirstList:       links(doc.Lists.FirstList, target),
		SecondList:      links(doc.Lists.SecondList, target),
	}
}

func links(entries []landing.LinkEntry, target string) []Link {
	out := make([]Link, 0, len(entries))
	for _, e := range entries {
		l := Link{Name: e.Name, Href: e.Link, Target: target}
		if target == "_blank" {
			l.Rel = "noopener noreferrer"
		}
		out = append(out, l)
	}
	return out
}
