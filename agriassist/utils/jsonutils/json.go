package jsonutils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reFence         = regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	reArray         = regexp.MustCompile(`(?s)\[.*\]`)
	reObject        = regexp.MustCompile(`(?s)\{.*\}`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

func stripInvisible(input string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '\uFEFF' || r == '\u200B' || r == '\u200C' || r == '\u200D' {
			return -1
		}
		return r
	}, input))
}

func unfence(input string) string {
	if match := reFence.FindStringSubmatch(input); len(match) > 1 {
		return strings.TrimSpace(match[1])
	}
	return input
}

// ExtractJSONArray pulls the outermost [...] block out of generated text.
// Models like to wrap the array in prose or a ```json fence.
// If no array is found the cleaned input is returned unchanged.
func ExtractJSONArray(input string) string {
	input = unfence(stripInvisible(input))
	if match := reArray.FindString(input); match != "" {
		input = match
	}
	return strings.TrimSpace(reTrailingComma.ReplaceAllString(input, "$1"))
}

// ExtractJSON tries to extract a JSON object from generated text.
func ExtractJSON(input string) string {
	input = unfence(stripInvisible(input))
	if match := reObject.FindString(input); match != "" {
		input = match
	}
	return strings.TrimSpace(reTrailingComma.ReplaceAllString(input, "$1"))
}

// ToJSON serializes a Go value to a JSON string with indentation.
// Returns an empty string if serialization fails.
func ToJSON(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(bytes))
}
