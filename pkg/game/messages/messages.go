// Package messages loads the game's text catalog and handles the inline markup used in
// log messages, e.g. "Found a TREASURE{treasure}!".
package messages

import (
	_ "embed"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

//go:embed en.po
var catalog []byte

// Domain is the gettext domain the catalog is registered under
const Domain = "default"

// Markup matches FUNCTION{operand} spans. Group 1 is the function, group 2 the operand.
var Markup = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

// Init parses the embedded catalog and makes it the storage behind gotext.Get
func Init() {
	po := gotext.NewPo()
	po.Parse(catalog)

	locale := gotext.NewLocale("", "en")
	locale.AddTranslator(Domain, po)
	gotext.SetStorage(locale)
}

// Strip removes markup, keeping each operand as plain text
func Strip(msg string) string {
	return Markup.ReplaceAllString(msg, "$2")
}

// Apply replaces every markup span with style(function, operand)
func Apply(msg string, style func(function, operand string) string) string {
	return Markup.ReplaceAllStringFunc(msg, func(span string) string {
		m := Markup.FindStringSubmatch(span)
		return style(m[1], m[2])
	})
}
