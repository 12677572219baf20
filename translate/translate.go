// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate renders operator-facing text through a locale-matched
// message printer.
package translate

//go:generate go tool gotext -srclang=en-US update -lang=en-US -out=catalog.go github.com/ezrec/mipsi/cpu github.com/ezrec/mipsi/emulator

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// Messages are keyed by their en-US text.
const sourceLanguage = "en-US"

var printer = newPrinter()

// newPrinter picks the catalog language closest to the operator's
// preferred locales.
func newPrinter() *message.Printer {
	preferred, err := locale.GetLocales()
	if err != nil {
		log.Printf("mipsi: no locale, using %v: %v", sourceLanguage, err)
	}

	preferred = append(preferred, sourceLanguage)

	return message.NewPrinter(message.MatchLanguage(preferred...))
}

// From renders a diagnostic or report label. The key is both the catalog
// lookup and the en-US fmt format used when no translation exists.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
