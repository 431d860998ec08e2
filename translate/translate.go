// Package translate renders the user-facing text of the bench tool in the
// language of the operator's locale.
package translate

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US,es-ES github.com/ezrec/aluverify/...

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/rs/zerolog/log"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	mutex   sync.RWMutex
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Debug().Err(err).Msg("translate: locale")
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage overrides the detected locale with a BCP 47 tag.
// An empty tag keeps the current language.
func SetLanguage(tag string) (err error) {
	if len(tag) == 0 {
		return
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return
	}

	mutex.Lock()
	printer = message.NewPrinter(parsed)
	mutex.Unlock()

	return
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	return printer.Sprintf(key, args...)
}
