// Package language defines the closed set of languages the pipeline handles
// and the localized section headings for translated summaries. Target-language
// validation happens here, in one place, instead of string comparisons
// scattered through the pipeline.
package language

import (
	"errors"
	"fmt"
)

// Language is a BCP-47-ish two-letter language tag from the closed set the
// pipeline supports.
type Language string

const (
	English    Language = "en"
	Spanish    Language = "es"
	Japanese   Language = "ja"
	Portuguese Language = "pt"
)

// ErrUnsupported is returned by ParseTarget for languages outside the
// supported translation target set.
var ErrUnsupported = errors.New("unsupported target language")

// supportedTargets is the fixed set of translation targets. English is the
// source language only, never a translation target.
var supportedTargets = []Language{Spanish, Japanese, Portuguese}

// SupportedTargets returns the translation target set in stable order.
func SupportedTargets() []Language {
	out := make([]Language, len(supportedTargets))
	copy(out, supportedTargets)
	return out
}

// ParseTarget validates a raw language tag as a translation target. This is
// the single validation point for target languages in the pipeline.
func ParseTarget(tag string) (Language, error) {
	for _, l := range supportedTargets {
		if string(l) == tag {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupported, tag, targetList())
}

func targetList() string {
	s := ""
	for i, l := range supportedTargets {
		if i > 0 {
			s += ", "
		}
		s += string(l)
	}
	return s
}

// String returns the raw tag.
func (l Language) String() string { return string(l) }

// SectionHeadings holds the localized headings for the three sections of a
// translated summary, in presentation order.
type SectionHeadings struct {
	Overview     string
	KeyTakeaways string
	ActionItems  string
}

// headings carries the localized heading text per target language.
var headings = map[Language]SectionHeadings{
	Spanish: {
		Overview:     "Resumen general",
		KeyTakeaways: "Puntos clave",
		ActionItems:  "Acciones de seguimiento",
	},
	Japanese: {
		Overview:     "概要",
		KeyTakeaways: "主要なポイント",
		ActionItems:  "フォローアップのアクション",
	},
	Portuguese: {
		Overview:     "Resumo geral",
		KeyTakeaways: "Principais aprendizados",
		ActionItems:  "Ações de acompanhamento",
	},
}

// Headings returns the localized summary section headings for a target
// language. The boolean reports whether the language has a heading table;
// every language accepted by ParseTarget does.
func (l Language) Headings() (SectionHeadings, bool) {
	h, ok := headings[l]
	return h, ok
}
