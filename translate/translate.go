// Package translate formats user visible messages for the host locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	mutex   sync.Mutex
	printer *message.Printer
)

// current returns the active printer, selecting one from the host
// locales on first use.
func current() *message.Printer {
	mutex.Lock()
	defer mutex.Unlock()

	if printer == nil {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("tisgrid: locale: %v", err)
		}
		printer = newPrinter(locales...)
	}

	return printer
}

func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// Use overrides the host locales. An empty list restores en-US.
func Use(locales ...string) {
	p := newPrinter(locales...)

	mutex.Lock()
	printer = p
	mutex.Unlock()
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}
