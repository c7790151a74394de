package version

import (
	"strings"
	"testing"

	"github.com/damn090909-boop/Simple-Game/pkg/api"
)

func TestBuildIDFor(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "2026-01-01",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "2026-01-02",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "2027-01-01",
			expected: 365,
		},
		{
			name:     "date with leap year included",
			date:     "2029-01-01",
			expected: 1096,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "2025-12-31",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := buildIDFor(tt.date)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("buildIDFor(%q) = %d, want %d", tt.date, got, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = ""
	if got := String(); !strings.HasPrefix(got, "Simple Game build unknown protocol[2]") {
		t.Errorf("String() = %q", got)
	}

	BuildDate = "2026-01-11"
	got := String()
	if !strings.HasPrefix(got, "Simple Game build 10 (2026-01-11)") || !strings.Contains(got, "ci[local]") {
		t.Errorf("String() = %q", got)
	}
}

func TestInfo(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()

	BuildDate = "not-a-date"
	info := Info()
	if info.Known || info.Error == "" {
		t.Errorf("Info() = %+v, want an error", info)
	}
	if !info.Compatible(api.ProtocolVersion) || info.Compatible(api.ProtocolVersion-1) {
		t.Errorf("protocol %d compatibility is wrong", info.Protocol)
	}
	if info.Go == "" {
		t.Error("Go version is empty")
	}
}
