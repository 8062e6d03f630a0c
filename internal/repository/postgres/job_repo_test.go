package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"golang", "%golang%"},
		{"100%", `%100\%%`},
		{"front_end", `%front\_end%`},
		{`C:\dev`, `%C:\\dev%`},
		{"%_", `%\%\_%`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.in))
		})
	}
}
