// ABOUTME: Classification vocabulary for catalog cards.
// ABOUTME: Read-only allow-lists, normalization helpers and display labels.

package models

import (
	"strings"
	"unicode"
)

var (
	categoryOrder   = []string{"data", "analytics", "ai-application", "ai-agent"}
	typeOrder       = []string{"code", "design guidance", "migration guidance", "blog", "public documentation", "level up", "onlinedemo", "deployabledemo"}
	visibilityOrder = []string{"public", "private"}

	categorySet   = toSet(categoryOrder)
	typeSet       = toSet(typeOrder)
	visibilitySet = toSet(visibilityOrder)
)

var specialLabels = map[string]string{
	"ai-application": "AI Application",
	"ai-agent":       "AI Agent",
	"onlinedemo":     "Demo (Online)",
	"deployabledemo": "Demo (Deployable)",
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Categories returns the allowed category values in display order.
func Categories() []string { return append([]string(nil), categoryOrder...) }

// Types returns the allowed type values in display order.
func Types() []string { return append([]string(nil), typeOrder...) }

// Visibilities returns the allowed visibility values.
func Visibilities() []string { return append([]string(nil), visibilityOrder...) }

func IsCategory(v string) bool {
	_, ok := categorySet[v]
	return ok
}

func IsType(v string) bool {
	_, ok := typeSet[v]
	return ok
}

func IsVisibility(v string) bool {
	_, ok := visibilitySet[v]
	return ok
}

// Normalize lowercases and trims a value.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// NormalizeTitle returns the key used to detect duplicate titles.
func NormalizeTitle(title string) string {
	return Normalize(title)
}

// SplitList splits a comma separated cell into normalized, non-empty tokens.
func SplitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if v := Normalize(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Label returns the human label shown for a category or type value.
func Label(value string) string {
	if l, ok := specialLabels[value]; ok {
		return l
	}
	words := strings.Split(value, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
