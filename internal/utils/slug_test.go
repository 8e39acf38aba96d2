package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Pipeline Valve", "pipeline-valve"},
		{"already slug", "pipeline-valve", "pipeline-valve"},
		{"punctuation collapsed", "DN200 (carbon steel) valve", "dn200-carbon-steel-valve"},
		{"leading and trailing junk", "  --Tank Farm!  ", "tank-farm"},
		{"digits kept", "ISO 9001 Certificate", "iso-9001-certificate"},
		{"non-ascii dropped", "Köln Terminal", "k-ln-terminal"},
		{"empty", "", ""},
		{"only junk", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
