package shared

import "fmt"

// FormatRuntime renders a runtime in minutes as "1h 52m".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return "—"
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}

// FormatRating renders a vote average out of ten with one decimal.
func FormatRating(voteAverage float64) string {
	return fmt.Sprintf("%.1f/10", voteAverage)
}

// ReleaseYear extracts the year from a YYYY-MM-DD release date.
func ReleaseYear(releaseDate string) string {
	if len(releaseDate) < 4 {
		return ""
	}
	return releaseDate[:4]
}
