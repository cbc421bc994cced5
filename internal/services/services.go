// package services defines interface Catalog for interacting with the movie API
package services

import (
	"context"

	"github.com/desertthunder/mvx/internal/models"
)

// Catalog defines the typed operations available against the movie catalog.
// Every operation issues one HTTP request and returns typed data or a
// normalized error; implementations never retry.
type Catalog interface {
	// MovieDetails retrieves the full record for one movie.
	MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error)

	// SearchMovies searches by text with server pagination, an optional
	// release-year constraint and a client-side genre filter.
	SearchMovies(ctx context.Context, query string, page int, year string, genreIDs []int) (*models.MoviePage, error)

	// Genres retrieves the genre catalog (no pagination).
	Genres(ctx context.Context) (*models.GenreList, error)

	// MoviesByGenre retrieves one page of movies for a genre.
	MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error)

	// AllGenresWithMovies retrieves a bounded movie sample per genre for
	// the landing screen.
	AllGenresWithMovies(ctx context.Context, limitPerGenre int) (*models.AllGenres, error)
}
