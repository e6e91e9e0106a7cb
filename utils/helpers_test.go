package utils

import (
	"testing"
	"time"
)

func TestExtractUserID(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"<@123456789>", "123456789", false},
		{"<@!123456789>", "123456789", false},
		{"123456789", "", true},
		{"<@abc>", "", true},
		{"<@>", "", true},
	}
	for _, tc := range cases {
		got, err := ExtractUserID(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ExtractUserID(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ExtractUserID(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ExtractUserID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if got, err := ParseAmount("500", 1000); err != nil || got != 500 {
		t.Fatalf("ParseAmount(500) = %d, %v", got, err)
	}
	if got, err := ParseAmount("all", 1000); err != nil || got != 1000 {
		t.Fatalf("ParseAmount(all) = %d, %v", got, err)
	}
	if got, err := ParseAmount("ALL", 1000); err != nil || got != 1000 {
		t.Fatalf("ParseAmount(ALL) = %d, %v", got, err)
	}
	for _, bad := range []string{"0", "-5", "abc", "1.5", ""} {
		if _, err := ParseAmount(bad, 1000); err == nil {
			t.Fatalf("ParseAmount(%q): expected error", bad)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{4 * time.Minute, "4 minute(s)"},
		{90 * time.Second, "1 minute(s) 30 second(s)"},
		{25*time.Hour + 30*time.Minute + 5*time.Second, "25 hour(s) 30 minute(s) 5 second(s)"},
		{500 * time.Millisecond, "1 second(s)"},
		{0, "a moment"},
		{-time.Second, "a moment"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
