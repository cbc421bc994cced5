// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
)

// MockCatalog is a test double for [services.Catalog]. Zero-value methods
// return canned data; hooks override individual operations.
type MockCatalog struct {
	DetailsFn   func(ctx context.Context, movieID int) (*models.MovieDetails, error)
	SearchFn    func(ctx context.Context, query string, page int, year string, genreIDs []int) (*models.MoviePage, error)
	GenresFn    func(ctx context.Context) (*models.GenreList, error)
	ByGenreFn   func(ctx context.Context, genreID, page int) (*models.MoviePage, error)
	AllGenresFn func(ctx context.Context, limitPerGenre int) (*models.AllGenres, error)
}

func (m *MockCatalog) MovieDetails(ctx context.Context, movieID int) (*models.MovieDetails, error) {
	if m.DetailsFn != nil {
		return m.DetailsFn(ctx, movieID)
	}
	return &models.MovieDetails{Movie: models.Movie{ID: movieID, Title: "mock movie"}}, nil
}

func (m *MockCatalog) SearchMovies(ctx context.Context, query string, page int, year string, genreIDs []int) (*models.MoviePage, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, query, page, year, genreIDs)
	}
	return &models.MoviePage{Page: page, TotalPages: 1}, nil
}

func (m *MockCatalog) Genres(ctx context.Context) (*models.GenreList, error) {
	if m.GenresFn != nil {
		return m.GenresFn(ctx)
	}
	return &models.GenreList{}, nil
}

func (m *MockCatalog) MoviesByGenre(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
	if m.ByGenreFn != nil {
		return m.ByGenreFn(ctx, genreID, page)
	}
	return &models.MoviePage{Page: page, TotalPages: 1}, nil
}

func (m *MockCatalog) AllGenresWithMovies(ctx context.Context, limitPerGenre int) (*models.AllGenres, error) {
	if m.AllGenresFn != nil {
		return m.AllGenresFn(ctx, limitPerGenre)
	}
	return &models.AllGenres{}, nil
}

// StaticSession is a [services.SessionReader] returning a fixed username.
type StaticSession struct {
	User string
}

func (s StaticSession) Username() string { return s.User }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
