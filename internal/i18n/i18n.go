// Package i18n holds the user-facing message catalog in English and
// Traditional Chinese.
//
// The active language is an explicit Lang value passed to the code that
// formats messages; there is no process-wide current language.
package i18n

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Lang identifies a catalog language.
type Lang string

const (
	English Lang = "en"
	Chinese Lang = "zh"
)

// DefaultLang is used for unknown languages and missing translations.
const DefaultLang = English

// EnvVar selects the language when no --lang flag is given.
const EnvVar = "HSU_LANG"

// Args are the named values substituted into {name} placeholders.
type Args map[string]any

// Normalize maps a user-supplied language tag to a supported Lang.
// "zh", "zh-TW", "zh_Hant" select Chinese; anything else English.
func Normalize(value string) Lang {
	lower := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(lower, "zh"):
		return Chinese
	case strings.HasPrefix(lower, "en"):
		return English
	}
	return DefaultLang
}

// FromArgs returns the value of a --lang/-l flag in args, if present.
// It runs before flag parsing so help text can already be localized.
func FromArgs(args []string) (string, bool) {
	var value string
	found := false
	for i, arg := range args {
		if arg == "--" {
			break
		}
		switch {
		case strings.HasPrefix(arg, "--lang="):
			value, found = strings.TrimPrefix(arg, "--lang="), true
		case (arg == "--lang" || arg == "-l") && i+1 < len(args):
			value, found = args[i+1], true
		}
	}
	return value, found
}

// Resolve picks the language from, in order: a --lang flag in args, the
// HSU_LANG environment variable, the fallback (usually from config).
func Resolve(args []string, fallback string) Lang {
	if v, ok := FromArgs(args); ok && v != "" {
		return Normalize(v)
	}
	if v := os.Getenv(EnvVar); v != "" {
		return Normalize(v)
	}
	return Normalize(fallback)
}

// Tr returns the message for key in l, falling back to English and then
// to the key itself. Placeholders without a value are left as is.
func (l Lang) Tr(key string, args Args) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}
	template := entry[l]
	if template == "" {
		template = entry[DefaultLang]
	}
	if template == "" {
		return key
	}
	return format(template, args)
}

// String returns the language tag.
func (l Lang) String() string {
	return string(l)
}

// Keys returns every catalog key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func format(template string, args Args) string {
	if len(args) == 0 {
		return template
	}
	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", fmt.Sprint(value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
