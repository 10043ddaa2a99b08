package munge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Statistics", "statistics"},
		{"spaces become hyphens", "open data", "open-data"},
		{"invalid characters become hyphens", "a&b", "a-b"},
		{"runs collapse", "a & b", "a-b"},
		{"surrounding separators trimmed", "-data-", "data"},
		{"short tags padded", "x", "x_"},
		{"allowed punctuation kept", "covid_19.stats", "covid_19.stats"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tag(tt.in))
		})
	}
}

func TestTagClampsLength(t *testing.T) {
	long := strings.Repeat("a", 150)
	assert.Len(t, Tag(long), 100)
}
