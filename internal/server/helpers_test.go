package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeParam(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"id", "id"},
		{"userId", "user id"},
		{"friendId", "friend id"},
		{"otherId", "other id"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, humanizeParam(tt.in))
	}
}

func TestSplitCamel(t *testing.T) {
	assert.Equal(t, []string{"other", "Id"}, splitCamel("otherId"))
	assert.Equal(t, []string{"id"}, splitCamel("id"))
}
