// package formatter provides functions to export movie data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// ExportToCSV converts a list of movies to CSV with columns: ID, Title, Release Date, Rating, Overview
func ExportToCSV(movies []models.Movie) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Release Date", "Rating", "Overview"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, movie := range movies {
		record := []string{
			strconv.Itoa(movie.ID),
			movie.Title,
			movie.ReleaseDate,
			fmt.Sprintf("%.1f", movie.VoteAverage),
			movie.Overview,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a titled list of movies to a Markdown document.
func ExportToMarkdown(title string, movies []models.Movie) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(movies)))

	for i, movie := range movies {
		year := shared.ReleaseYear(movie.ReleaseDate)
		yearPart := ""
		if year != "" {
			yearPart = fmt.Sprintf(" (%s)", year)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s — %s\n", i+1, movie.Title, yearPart, shared.FormatRating(movie.VoteAverage)))
	}

	return buf.Bytes()
}

// ExportDetailsToText converts a full movie record to a plain text summary
// with top-billed cast and the director.
func ExportDetailsToText(details *models.MovieDetails) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", details.Title))
	if year := shared.ReleaseYear(details.ReleaseDate); year != "" {
		buf.WriteString(fmt.Sprintf("Released: %s\n", details.ReleaseDate))
	}
	buf.WriteString(fmt.Sprintf("Runtime: %s\n", shared.FormatRuntime(details.Runtime)))
	buf.WriteString(fmt.Sprintf("Rating: %s\n", shared.FormatRating(details.VoteAverage)))

	if len(details.Genres) > 0 {
		buf.WriteString("Genres: ")
		for i, genre := range details.Genres {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(genre.Name)
		}
		buf.WriteString("\n")
	}

	for _, crew := range details.Credits.Crew {
		if crew.Job == "Director" {
			buf.WriteString(fmt.Sprintf("Director: %s\n", crew.Name))
			break
		}
	}

	if len(details.Credits.Cast) > 0 {
		buf.WriteString("Cast:\n")
		cast := details.Credits.Cast
		if len(cast) > 10 {
			cast = cast[:10]
		}
		for _, member := range cast {
			buf.WriteString(fmt.Sprintf("  %s as %s\n", member.Name, member.Character))
		}
	}

	if details.Overview != "" {
		buf.WriteString(fmt.Sprintf("\n%s\n", details.Overview))
	}

	return buf.Bytes()
}

// WriteExport writes exported data to the given path.
func WriteExport(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
