// Package translate formats user visible messages for the locales of the
// current user.
//
// The CPU32_LANG environment variable, a colon separated list of
// language tags, overrides the locales reported by the system.
package translate

import (
	"log"
	"os"
	"slices"
	"strings"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// ENV_LANG names the environment variable that overrides the user locales.
const ENV_LANG = "CPU32_LANG"

// FALLBACK is the locale messages are written in.
const FALLBACK = "en-US"

var printer *message.Printer

func init() {
	SetLocales()
}

// locales returns the preferred locales of the user, most preferred first,
// ending with FALLBACK.
func locales() (tags []string) {
	env := os.Getenv(ENV_LANG)
	if len(env) != 0 {
		tags = strings.Split(env, ":")
	} else {
		var err error
		tags, err = locale.GetLocales()
		if err != nil {
			log.Printf("cpu32: locale: %v", err)
		}
	}

	return withFallback(tags)
}

func withFallback(tags []string) []string {
	tags = slices.DeleteFunc(slices.Clone(tags), func(tag string) bool {
		return len(strings.TrimSpace(tag)) == 0
	})
	if !slices.Contains(tags, FALLBACK) {
		tags = append(tags, FALLBACK)
	}
	return tags
}

// SetLocales selects the locales used by From, most preferred first.
// With none given, the user's locales are used.
func SetLocales(tags ...string) {
	if len(tags) == 0 {
		tags = locales()
	} else {
		tags = withFallback(tags)
	}

	printer = message.NewPrinter(message.MatchLanguage(tags...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
