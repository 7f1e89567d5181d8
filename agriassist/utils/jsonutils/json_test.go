package jsonutils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"fenced", "Here you go:\n```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"prose", `Sure! [{"a":1},{"a":2}] Hope this helps.`, `[{"a":1},{"a":2}]`},
		{"trailing comma", `[{"a":1},]`, `[{"a":1}]`},
		{"bom", "\uFEFF[1, 2]", `[1, 2]`},
		{"no array", "nothing here", "nothing here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONArray(tt.input))
		})
	}
}

func TestExtractJSON(t *testing.T) {
	out := ExtractJSON("```\n{\"crop\": \"rice\",}\n```")
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "rice", v["crop"])
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", ToJSON(map[string]int{"a": 1}))
	assert.Equal(t, "", ToJSON(make(chan int)))
}
