package color

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPlainWhenDisabled(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	assert.Equal(t, "hello", ColorInfo("hello"))
	assert.Equal(t, "a\n\nb", ColorAnswer("a\n\nb"))
	assert.Equal(t, "x", Sprint(Kind(99), "x"))
}

func TestAnswerColorsEachLine(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	out := ColorAnswer("rice\n\nwheat")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "\n\n")
}
