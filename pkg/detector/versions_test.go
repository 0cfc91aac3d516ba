package detector

import "testing"

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"3.11.2", "3.11"},
		{"3.12", "3.12"},
		{"v20.11.1", "20.11"},
		{"17", "17"},
		{"20", "20"},
		{"  3.10.4  ", "3.10"},
		{"", ""},
		{"latest", "latest"},
		{"1.2.3-rc.1", "1.2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := normalizeVersion(tt.input); got != tt.expected {
				t.Errorf("normalizeVersion(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		pattern  string
		expected string
	}{
		{
			name:     "runtime.txt style",
			content:  "python-3.11.8",
			pattern:  `python-(\d+\.\d+(?:\.\d+)?)`,
			expected: "3.11",
		},
		{
			name:     "no match",
			content:  "nothing here",
			pattern:  `python-(\d+\.\d+)`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractVersion(tt.content, tt.pattern); got != tt.expected {
				t.Errorf("extractVersion() = %q, want %q", got, tt.expected)
			}
		})
	}
}
