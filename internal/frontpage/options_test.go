package frontpage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntval(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"", 0},
		{"0", 0},
		{"1", 1},
		{"42", 42},
		{"  42", 42},
		{"+7", 7},
		{"-3", -3},
		{"12abc", 12},
		{"abc", 0},
		{"on", 0},
		{"-", 0},
		{"1.9", 1},
		{"99999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Intval(tt.in))
		})
	}
}

func TestSanitizeOptions(t *testing.T) {
	assert.Equal(t, Options{Enabled: true, TargetID: 12}, SanitizeOptions("1", "12"))
	assert.Equal(t, Options{}, SanitizeOptions("", ""))
	assert.Equal(t, Options{Enabled: true}, SanitizeOptions("5", "-4"))
	assert.Equal(t, Options{TargetID: 3}, SanitizeOptions("no", "3 "))
}

func TestOptionsActive(t *testing.T) {
	assert.True(t, Options{Enabled: true, TargetID: 1}.Active())
	assert.False(t, Options{Enabled: true}.Active())
	assert.False(t, Options{TargetID: 1}.Active())
}
