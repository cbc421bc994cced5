package shared

import "testing"

func TestFormat(t *testing.T) {
	t.Run("FormatRuntime", func(t *testing.T) {
		cases := []struct {
			minutes int
			want    string
		}{
			{204, "3h 24m"},
			{112, "1h 52m"},
			{60, "1h 00m"},
			{45, "45m"},
			{0, "—"},
			{-10, "—"},
		}

		for _, c := range cases {
			if got := FormatRuntime(c.minutes); got != c.want {
				t.Errorf("FormatRuntime(%d) = %q, want %q", c.minutes, got, c.want)
			}
		}
	})

	t.Run("FormatRating", func(t *testing.T) {
		if got := FormatRating(7.456); got != "7.5/10" {
			t.Errorf("expected '7.5/10', got %q", got)
		}
		if got := FormatRating(0); got != "0.0/10" {
			t.Errorf("expected '0.0/10', got %q", got)
		}
	})

	t.Run("ReleaseYear", func(t *testing.T) {
		if got := ReleaseYear("1975-08-15"); got != "1975" {
			t.Errorf("expected '1975', got %q", got)
		}
		if got := ReleaseYear(""); got != "" {
			t.Errorf("expected empty year for empty date, got %q", got)
		}
		if got := ReleaseYear("19"); got != "" {
			t.Errorf("expected empty year for short date, got %q", got)
		}
	})
}
