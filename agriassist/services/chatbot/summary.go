package chatbot

import (
	"regexp"
	"strings"
)

var reSentenceEnd = regexp.MustCompile(`[.!?]+`)

// Summarize keeps the first two sentences of text and caps the result at limit runes.
func Summarize(text string, limit int) string {
	kept := make([]string, 0, 2)
	for _, p := range reSentenceEnd.Split(text, -1) {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}
		kept = append(kept, p)
		if len(kept) == 2 {
			break
		}
	}
	return truncate(strings.Join(kept, ". ")+".", limit)
}

// truncate cuts s to limit runes, the last three being "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
