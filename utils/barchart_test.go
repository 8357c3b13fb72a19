package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/elC0mpa/fabric-doctor/model"
)

func TestBarLabelTruncatesOnRunes(t *testing.T) {
	testCases := []struct {
		name     string
		sub      model.Subscription
		expected string
	}{
		{
			name:     "short name untouched",
			sub:      model.Subscription{ID: "sub-a", Name: "prod"},
			expected: "prod (1/2)",
		},
		{
			name:     "falls back to ID",
			sub:      model.Subscription{ID: "sub-a"},
			expected: "sub-a (1/2)",
		},
		{
			name:     "long ascii name truncated to 16",
			sub:      model.Subscription{ID: "sub-a", Name: "very-long-subscription-name"},
			expected: "very-long-subscr (1/2)",
		},
		{
			name:     "multi-byte name truncated without splitting a rune",
			sub:      model.Subscription{ID: "sub-a", Name: strings.Repeat("ä", 20)},
			expected: strings.Repeat("ä", 16) + " (1/2)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := barLabel(tc.sub, 1, 1)
			if got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
			if !utf8.ValidString(got) {
				t.Errorf("label is not valid UTF-8: %q", got)
			}
		})
	}
}
