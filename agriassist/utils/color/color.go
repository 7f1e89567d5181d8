// Package color styles CLI output. Colors switch off automatically when
// stdout is not a terminal or NO_COLOR is set.
package color

import (
	"strings"

	"github.com/fatih/color"
)

type Kind int

const (
	Prompt Kind = iota
	Info
	Warning
	Error
	Answer
	Source
)

var palette = map[Kind]*color.Color{
	Prompt:  color.New(color.FgCyan, color.Bold),
	Info:    color.New(color.FgGreen),
	Warning: color.New(color.FgYellow, color.Bold),
	Error:   color.New(color.FgRed, color.Bold),
	Answer:  color.New(color.FgHiYellow),
	Source:  color.New(color.FgHiBlack, color.Italic),
}

func Sprint(kind Kind, s string) string {
	c, ok := palette[kind]
	if !ok {
		return s
	}
	return c.Sprint(s)
}

func ColorPrompt(s string) string  { return Sprint(Prompt, s) }
func ColorInfo(s string) string    { return Sprint(Info, s) }
func ColorWarning(s string) string { return Sprint(Warning, s) }
func ColorError(s string) string   { return Sprint(Error, s) }
func ColorSource(s string) string  { return Sprint(Source, s) }

// ColorAnswer colors each line separately so multi-line answers stay
// readable when piped through a pager.
func ColorAnswer(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = Sprint(Answer, l)
		}
	}
	return strings.Join(lines, "\n")
}
