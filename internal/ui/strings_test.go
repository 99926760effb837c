package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in    string
		limit int
		want  string
	}{
		{"  short  ", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer title", 10, "a longe..."},
		{"abcdef", 3, "abc"},
		{"unbounded", 0, "unbounded"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("https://covers.openlibrary.org/b/id/123-M.jpg", 20)
	if len([]rune(got)) != 20 {
		t.Fatalf("truncateMiddle length = %d, want 20 (%q)", len([]rune(got)), got)
	}
	if got[:9] != "https://c" {
		t.Fatalf("truncateMiddle lost prefix: %q", got)
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Fatalf("clamp high = %d, want 3", got)
	}
	if got := clamp(-1, 0, 3); got != 0 {
		t.Fatalf("clamp low = %d, want 0", got)
	}
	if got := clamp(2, 0, -1); got != 0 {
		t.Fatalf("clamp empty range = %d, want 0", got)
	}
}
