package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmClean(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"no\n", false},
		{"\n", false},
		{"", false},
		{"definitely\n", false},
	}

	for _, tc := range cases {
		out := &strings.Builder{}
		got := confirmClean(strings.NewReader(tc.input), out)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Contains(t, out.String(), "Continue?")
	}
}
