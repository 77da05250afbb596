// Package i18n provides the display-string catalogs for chart rendering.
// English is the fallback; Tamil carries the traditional names.
package i18n

import (
	"golang.org/x/text/language"
)

// Translator resolves keys against one locale's catalog. Missing keys fall
// back to English, then to the key itself.
type Translator struct {
	tag     language.Tag
	catalog map[string]string
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // fallback
	language.Tamil,
})

var catalogs = map[language.Tag]map[string]string{
	language.English: english,
	language.Tamil:   tamil,
}

// For returns the Translator best matching the requested locales, in the
// shape of an Accept-Language value or a plain tag such as "ta" or "en-IN".
// Unknown or empty input yields English.
func For(locales ...string) *Translator {
	tags := make([]language.Tag, 0, len(locales))
	for _, l := range locales {
		if parsed, _, err := language.ParseAcceptLanguage(l); err == nil {
			tags = append(tags, parsed...)
		}
	}
	tag, _, _ := matcher.Match(tags...)

	base, _ := tag.Base()
	resolved := language.English
	if ta, _ := language.Tamil.Base(); base == ta {
		resolved = language.Tamil
	}
	return &Translator{tag: resolved, catalog: catalogs[resolved]}
}

// Tag reports the resolved locale, suitable for a Content-Language header.
func (t *Translator) Tag() language.Tag { return t.tag }

// Translate returns the localized string for key.
func (t *Translator) Translate(key string) string {
	if s, ok := t.catalog[key]; ok {
		return s
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}

var english = map[string]string{
	"Su":  "Su",
	"Mo":  "Mo",
	"Ma":  "Ma",
	"Me":  "Me",
	"Ju":  "Ju",
	"Ve":  "Ve",
	"Sa":  "Sa",
	"Ra":  "Ra",
	"Ke":  "Ke",
	"Asc": "Asc",

	"Date":  "Date",
	"Time":  "Time",
	"Place": "Place",
}

var tamil = map[string]string{
	"Su":  "சூ",
	"Mo":  "சந்",
	"Ma":  "செ",
	"Me":  "பு",
	"Ju":  "கு",
	"Ve":  "சுக்",
	"Sa":  "சனி",
	"Ra":  "ரா",
	"Ke":  "கே",
	"Asc": "ல",

	"Date":  "தேதி",
	"Time":  "நேரம்",
	"Place": "இடம்",
}
