package datemath

import "time"

const DefaultLocale = "fi-FI"

var displayLayouts = map[string]string{
	"fi-FI": "2.1.2006 klo 15.04",
	"sv-SE": "2006-01-02 15:04",
	"en-GB": "02/01/2006, 15:04",
	"en-US": "1/2/2006, 3:04 PM",
}

// FormatDisplay renders instant in the zone for humans. Unknown locales use DefaultLocale.
func (z *Zone) FormatDisplay(instant time.Time, locale string) string {
	layout, ok := displayLayouts[locale]
	if !ok {
		layout = displayLayouts[DefaultLocale]
	}
	return instant.In(z.location).Format(layout)
}

// SupportedLocale reports whether FormatDisplay has a dedicated layout for locale.
func SupportedLocale(locale string) bool {
	_, ok := displayLayouts[locale]
	return ok
}
