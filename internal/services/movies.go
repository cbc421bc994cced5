// Movie catalog implementation of [Catalog]
//
// Endpoint shapes follow the BollywoodVerse proxy API, which forwards to
// TMDB for single-movie details and serves precomputed genre files for
// lists.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// MovieService implements [Catalog] against the remote movie API. Each
// operation issues exactly one [APIService] call and fails with one of the
// three normalized error kinds. No operation retries or recovers.
type MovieService struct {
	api    *APIService
	logger *log.Logger
}

// NewMovieService creates a movie service on top of the given API client.
func NewMovieService(api *APIService, logger *log.Logger) *MovieService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &MovieService{api: api, logger: logger}
}

var _ Catalog = (*MovieService)(nil)

// SetLogger replaces the service logger.
func (s *MovieService) SetLogger(l *log.Logger) {
	s.logger = l
}

// apiError preserves the server's detail message verbatim while remaining
// matchable via [shared.ErrAPIRequest].
type apiError struct {
	status int
	detail string
}

func (e *apiError) Error() string { return e.detail }
func (e *apiError) Unwrap() error { return shared.ErrAPIRequest }

// detailBody is the FastAPI error envelope.
type detailBody struct {
	Detail string `json:"detail"`
}

// normalize maps any failure into the service error taxonomy: a recognized
// HTTP failure with a detail message, the generic fetch failure, or the
// unknown fallback. All failures are logged here and re-thrown; callers
// never see raw transport errors.
func (s *MovieService) normalize(resp *APIResponse, err error) error {
	if err != nil {
		s.logger.Errorf("API error: %v", err)
		return shared.ErrFetchFailed
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	s.logger.Errorf("API error: status %d body %s", resp.StatusCode, string(resp.Body))

	var body detailBody
	if jsonErr := json.Unmarshal(resp.Body, &body); jsonErr == nil && body.Detail != "" {
		return &apiError{status: resp.StatusCode, detail: body.Detail}
	}

	return shared.ErrFetchFailed
}

// decode unmarshals a successful response body, surfacing the unknown-error
// kind when the payload does not match the expected shape.
func (s *MovieService) decode(resp *APIResponse, out any) error {
	if err := json.Unmarshal(resp.Body, out); err != nil {
		s.logger.Errorf("failed to decode response: %v", err)
		return shared.ErrUnknown
	}
	return nil
}

// MovieDetails fetches the full record for one movie by id.
func (s *MovieService) MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error) {
	resp, err := s.api.Get(ctx, fmt.Sprintf("/movie/%d", movieID))
	if err := s.normalize(resp, err); err != nil {
		return nil, err
	}

	var details models.MovieDetails
	if err := s.decode(resp, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// SearchMovies searches the catalog by text. Pages are server-side; the
// optional genre filter is applied client-side to the returned page:
// total_results is recomputed to the filtered count, but total_pages still
// reflects the server's unfiltered paging, so page navigation keeps working
// against the server's page space.
func (s *MovieService) SearchMovies(ctx context.Context, query string, page int, year string, genreIDs []int) (*models.MoviePage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	if year != "" {
		params.Set("year", year)
	}

	resp, err := s.api.Get(ctx, "/movies/search?"+params.Encode())
	if err := s.normalize(resp, err); err != nil {
		return nil, err
	}

	var result models.MoviePage
	if err := s.decode(resp, &result); err != nil {
		return nil, err
	}

	if len(genreIDs) > 0 {
		filtered := make([]models.Movie, 0, len(result.Results))
		for _, movie := range result.Results {
			if movie.HasGenre(genreIDs) {
				filtered = append(filtered, movie)
			}
		}
		result.Results = filtered
		result.TotalResults = len(filtered)
	}

	return &result, nil
}

// Genres fetches the genre catalog. Pure read: calling it twice with no
// intervening mutation returns identical data and has no side effects.
func (s *MovieService) Genres(ctx context.Context) (*models.GenreList, error) {
	resp, err := s.api.Get(ctx, "/genres")
	if err := s.normalize(resp, err); err != nil {
		return nil, err
	}

	var genres models.GenreList
	if err := s.decode(resp, &genres); err != nil {
		return nil, err
	}

	return &genres, nil
}

// MoviesByGenre fetches one server-paginated page of movies for a genre.
// The page number is passed through as-is; bounds are not pre-validated.
func (s *MovieService) MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))

	resp, err := s.api.Get(ctx, fmt.Sprintf("/movies/genre/%d?%s", genreID, params.Encode()))
	if err := s.normalize(resp, err); err != nil {
		return nil, err
	}

	var result models.MoviePage
	if err := s.decode(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AllGenresWithMovies fetches a bounded sample of movies per genre for the
// landing screen.
func (s *MovieService) AllGenresWithMovies(ctx context.Context, limitPerGenre int) (*models.AllGenres, error) {
	if limitPerGenre <= 0 {
		limitPerGenre = 5
	}

	params := url.Values{}
	params.Set("limit_per_genre", strconv.Itoa(limitPerGenre))

	resp, err := s.api.Get(ctx, "/movies/all-genres?"+params.Encode())
	if err := s.normalize(resp, err); err != nil {
		return nil, err
	}

	var all models.AllGenres
	if err := s.decode(resp, &all); err != nil {
		return nil, err
	}

	return &all, nil
}
