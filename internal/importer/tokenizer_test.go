package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFields(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "a,b,c", []string{"a", "b", "c"}},
		{"empty fields", "a,,c,", []string{"a", "", "c", ""}},
		{"quoted comma", `a,"8-10am, 10-12",c`, []string{"a", "8-10am, 10-12", "c"}},
		{"escaped quote", `a,"say ""hi""",c`, []string{"a", `say "hi"`, "c"}},
		{"quoted empty", `a,"",c`, []string{"a", "", "c"}},
		{"unterminated quote", `a,"rest of line, swallowed`, []string{"a", "rest of line, swallowed"}},
		{"single field", "solo", []string{"solo"}},
		{"empty line", "", []string{""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitFields(tc.line))
		})
	}
}

func TestSplitLines(t *testing.T) {
	text := "first\r\n\r\nsecond\n\n   \nthird"
	assert.Equal(t, []string{"first", "second", "third"}, SplitLines(text))
	assert.Empty(t, SplitLines("\n\n  \n"))
}
