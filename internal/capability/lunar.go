// Package capability answers which optional widget features the current
// environment supports.
package capability

import (
	"strings"

	"golang.org/x/text/language"
)

// Check reports whether a capability is available.
type Check func() bool

var chinese, _ = language.Chinese.Base()

// LunarSupported reports whether the lunar calendar line applies to locale.
// POSIX forms like "zh_CN.UTF-8" are accepted.
func LunarSupported(locale string) bool {
	tag, ok := parseLocale(locale)
	if !ok {
		return false
	}
	base, conf := tag.Base()
	return conf != language.No && base == chinese
}

// LunarCheck binds LunarSupported to a fixed locale.
func LunarCheck(locale string) Check {
	supported := LunarSupported(locale)
	return func() bool { return supported }
}

func parseLocale(locale string) (language.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
