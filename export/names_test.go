package export

import "testing"

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ExtractAge", "extract-age"},
		{"ExtractAgeThroughTwoLevels", "extract-age-through-two-levels"},
		{"BumpDeepID", "bump-deep-id"},
		{"GetHTTPURL", "get-http-url"},
		{"HTTPServer", "http-server"},
		{"SumAges", "sum-ages"},
		{"A", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := toKebabCase(tt.input)
			if result != tt.expected {
				t.Errorf("toKebabCase(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSplitQualified(t *testing.T) {
	tests := []struct {
		input string
		ns    string
		fn    string
	}{
		{"sum-ages", "", "sum-ages"},
		{"writ:records/records@0.1.0#sum-ages", "writ:records/records@0.1.0", "sum-ages"},
		{"#sum-ages", "", "sum-ages"},
	}

	for _, tt := range tests {
		ns, fn := splitQualified(tt.input)
		if ns != tt.ns || fn != tt.fn {
			t.Errorf("splitQualified(%q) = (%q, %q), want (%q, %q)", tt.input, ns, fn, tt.ns, tt.fn)
		}
	}
}
