// Package languages holds the fixed set of languages offered by the
// front-ends. The remote service supports many more; see
// translator.AzureService.Languages.
package languages

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	Auto = "auto"

	DefaultSource = Auto
	DefaultTarget = "en"
)

var ErrUnsupported = errors.New("unsupported language")

type Language struct {
	Code string
	Name string
	Tag  language.Tag
}

// IsAuto reports whether l is the auto-detect pseudo language.
func (l Language) IsAuto() bool {
	return l.Code == Auto
}

// NativeName returns the language's name in its own language, or "" for
// auto-detect.
func (l Language) NativeName() string {
	if l.IsAuto() {
		return ""
	}
	return display.Self.Name(l.Tag)
}

// Label is the text shown in language pickers.
func (l Language) Label() string {
	native := l.NativeName()
	if native == "" || strings.EqualFold(native, l.Name) {
		return l.Name
	}
	return fmt.Sprintf("%s (%s)", l.Name, native)
}

var catalogue = []Language{
	{Code: Auto, Name: "Auto-detect", Tag: language.Und},
	newLanguage("zh-Hant", "Chinese (Traditional)"),
	newLanguage("zh-Hans", "Chinese (Simplified)"),
	newLanguage("en", "English"),
	newLanguage("ja", "Japanese"),
	newLanguage("ko", "Korean"),
	newLanguage("fr", "French"),
	newLanguage("de", "German"),
	newLanguage("es", "Spanish"),
	newLanguage("ar", "Arabic"),
	newLanguage("ru", "Russian"),
	newLanguage("pt", "Portuguese"),
	newLanguage("it", "Italian"),
}

func newLanguage(code, name string) Language {
	return Language{Code: code, Name: name, Tag: language.MustParse(code)}
}

// Sources lists the source choices in display order, auto-detect first.
func Sources() []Language {
	out := make([]Language, len(catalogue))
	copy(out, catalogue)
	return out
}

// Targets lists the target choices in display order.
func Targets() []Language {
	out := make([]Language, 0, len(catalogue)-1)
	for _, l := range catalogue {
		if !l.IsAuto() {
			out = append(out, l)
		}
	}
	return out
}

// Lookup finds a catalogue entry by code, ignoring case.
func Lookup(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	for _, l := range catalogue {
		if strings.EqualFold(l.Code, code) {
			return l, true
		}
	}
	return Language{}, false
}

// Source resolves a source choice. Empty means auto-detect.
func Source(code string) (Language, error) {
	if strings.TrimSpace(code) == "" {
		code = DefaultSource
	}
	l, ok := Lookup(code)
	if !ok {
		return Language{}, fmt.Errorf("source %q: %w", code, ErrUnsupported)
	}
	return l, nil
}

// Target resolves a target choice. Empty means DefaultTarget; auto-detect is
// not a valid target.
func Target(code string) (Language, error) {
	if strings.TrimSpace(code) == "" {
		code = DefaultTarget
	}
	l, ok := Lookup(code)
	if !ok || l.IsAuto() {
		return Language{}, fmt.Errorf("target %q: %w", code, ErrUnsupported)
	}
	return l, nil
}

// Describe returns a readable name for any code, including ones outside the
// catalogue such as a detected language.
func Describe(code string) string {
	if l, ok := Lookup(code); ok {
		return l.Name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
