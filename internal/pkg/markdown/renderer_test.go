package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bold", "**Algorithms** - steps", "<strong>Algorithms</strong>"},
		{"heading", "## Core Concepts:", "<h2>Core Concepts:</h2>"},
		{"emphasis", "*Just ask!*", "<em>Just ask!</em>"},
		{"list", "- Binary Search", "<li>Binary Search</li>"},
		{"link", "[github.com/x](https://github.com/x)", `<a href="https://github.com/x">github.com/x</a>`},
		{"hard wraps", "one\ntwo", "one<br>\ntwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.src)
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestRenderOmitsRawHTML(t *testing.T) {
	got, err := NewRenderer().Render(`I understand you're asking about "<script>alert(1)</script>".`)
	require.NoError(t, err)
	assert.NotContains(t, got, "<script>")
}
