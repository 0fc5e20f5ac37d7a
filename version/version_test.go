package version

import "testing"

func TestGetFullVersion(t *testing.T) {
	saved := [3]string{Version, GitCommit, BuildDate}
	defer func() { Version, GitCommit, BuildDate = saved[0], saved[1], saved[2] }()

	tests := []struct {
		name      string
		version   string
		commit    string
		buildDate string
		expected  string
	}{
		{"Development build", "dev", "abc123", "today", "dev"},
		{"Release build", "1.2.0", "abc123", "2024-05-01", "1.2.0 (abc123, built 2024-05-01)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, GitCommit, BuildDate = tt.version, tt.commit, tt.buildDate
			if got := GetFullVersion(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
			if got := GetVersion(); got != tt.version {
				t.Errorf("Expected version %q, got %q", tt.version, got)
			}
		})
	}
}
