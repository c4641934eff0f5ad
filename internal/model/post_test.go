package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCharacters(t *testing.T) {
	cases := map[string]int{
		"":                 0,
		"hello":            5,
		"内容生成":             4,
		"Launch day 🚀":     12,
		"👩‍💻 ships #golang": 17,
	}
	for content, want := range cases {
		assert.Equal(t, want, CountCharacters(content), content)
	}
}
