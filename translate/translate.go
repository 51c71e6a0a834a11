// Package translate formats user-visible messages in the caller's locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no locale.
const DEFAULT_LOCALE = "en-US"

type localePrinter struct {
	tag     language.Tag
	printer *message.Printer
}

var current atomic.Pointer[localePrinter]

func use(tag language.Tag) {
	current.Store(&localePrinter{tag: tag, printer: message.NewPrinter(tag)})
}

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("shyasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	use(message.MatchLanguage(locales...))
}

// SetLocale replaces the host locale with a BCP 47 tag, such as "de-CH".
func SetLocale(tag string) (err error) {
	lang, err := language.Parse(tag)
	if err != nil {
		return
	}

	use(lang)
	return
}

// Locale returns the language messages are formatted for.
func Locale() language.Tag {
	return current.Load().tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return current.Load().printer.Sprintf(key, args...)
}
