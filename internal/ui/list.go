package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = genreItem{}
)

// movieItem wraps [models.Movie] to implement [list.Item].
type movieItem struct {
	movie models.Movie
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string {
	year := shared.ReleaseYear(i.movie.ReleaseDate)
	if year == "" {
		return i.movie.Title
	}
	return fmt.Sprintf("%s (%s)", i.movie.Title, year)
}
func (i movieItem) Description() string {
	desc := shared.FormatRating(i.movie.VoteAverage)
	if i.movie.Overview != "" {
		overview := i.movie.Overview
		if len(overview) > 80 {
			overview = overview[:77] + "..."
		}
		desc = fmt.Sprintf("%s • %s", desc, overview)
	}
	return desc
}

// genreItem wraps [models.GenreWithMovies] to implement [list.Item].
type genreItem struct {
	genre models.GenreWithMovies
}

func (i genreItem) FilterValue() string { return i.genre.Name }
func (i genreItem) Title() string       { return i.genre.Name }
func (i genreItem) Description() string {
	return fmt.Sprintf("%d featured movies", len(i.genre.Movies))
}

func movieItems(movies []models.Movie) []list.Item {
	items := make([]list.Item, len(movies))
	for i, movie := range movies {
		items[i] = movieItem{movie: movie}
	}
	return items
}
