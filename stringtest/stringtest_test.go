package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/flamecsv/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input []string
		want  string
	}{
		"empty": {
			input: nil,
			want:  "",
		},
		"single": {
			input: []string{"a"},
			want:  "a",
		},
		"multiple": {
			input: []string{"a", "b", "c"},
			want:  "a\nb\nc",
		},
		"trailing newline via empty element": {
			input: []string{"a", ""},
			want:  "a\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.JoinLF(tc.input...))
		})
	}
}

func TestJoinCRLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\r\nb", stringtest.JoinCRLF("a", "b"))
	assert.Equal(t, "", stringtest.JoinCRLF())
}
