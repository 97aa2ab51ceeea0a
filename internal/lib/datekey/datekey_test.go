package datekey

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{
			name:    "valid key",
			key:     "2026-09-01",
			wantErr: false,
		},
		{
			name:    "leap day",
			key:     "2024-02-29",
			wantErr: false,
		},
		{
			name:    "nonexistent day",
			key:     "2026-02-30",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			key:     "2026.09.01",
			wantErr: true,
		},
		{
			name:    "reversed order",
			key:     "01-09-2026",
			wantErr: true,
		},
		{
			name:    "timestamp instead of date",
			key:     "2026-09-01T12:00:00Z",
			wantErr: true,
		},
		{
			name:    "empty string",
			key:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.key)

			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.Format(Layout) != tt.key {
				t.Errorf("Parse(%q) roundtrip = %q", tt.key, got.Format(Layout))
			}
		})
	}
}

func TestShift(t *testing.T) {
	base := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		days int
		want string
	}{
		{
			name: "same day",
			days: 0,
			want: "2026-09-01",
		},
		{
			name: "next day",
			days: 1,
			want: "2026-09-02",
		},
		{
			name: "month boundary",
			days: 30,
			want: "2026-10-01",
		},
		{
			name: "backwards across year",
			days: -245,
			want: "2025-12-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Shift(base, tt.days)
			if got != tt.want {
				t.Errorf("Shift(%v, %d) = %q, want %q", base, tt.days, got, tt.want)
			}
		})
	}
}

func TestTodayIsValidKey(t *testing.T) {
	key := Today()

	parsed, err := Parse(key)
	if err != nil {
		t.Fatalf("Today() produced unparseable key %q: %v", key, err)
	}
	if parsed.Format(Layout) != key {
		t.Errorf("Today() roundtrip = %q, want %q", parsed.Format(Layout), key)
	}
}
