package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
	tu "github.com/desertthunder/mvx/internal/testing"
)

func newTestService(t *testing.T, handler http.HandlerFunc, session SessionReader) (*MovieService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api := NewAPIService(APIOpts{BaseURL: server.URL, Session: session})
	return NewMovieService(api, nil), server
}

func TestMovieService(t *testing.T) {
	t.Run("Error Normalization", func(t *testing.T) {
		t.Run("Detail Message Preserved Verbatim", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"detail": "Movie not found"}`))
			}, nil)

			_, err := svc.MovieDetails(context.Background(), 999999)
			if err == nil {
				t.Fatal("expected error for 404 response")
			}
			if err.Error() != "Movie not found" {
				t.Errorf("expected verbatim detail message, got %q", err.Error())
			}
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Error("expected error to match shared.ErrAPIRequest")
			}
		})

		t.Run("Non-JSON Failure Becomes Generic Fetch Error", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("upstream exploded"))
			}, nil)

			_, err := svc.MovieDetails(context.Background(), 42)
			if !errors.Is(err, shared.ErrFetchFailed) {
				t.Errorf("expected shared.ErrFetchFailed, got %v", err)
			}
		})

		t.Run("Empty Detail Becomes Generic Fetch Error", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"detail": ""}`))
			}, nil)

			_, err := svc.Genres(context.Background())
			if !errors.Is(err, shared.ErrFetchFailed) {
				t.Errorf("expected shared.ErrFetchFailed, got %v", err)
			}
		})

		t.Run("Transport Failure Becomes Generic Fetch Error", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused")),
			}
			api := NewAPIService(APIOpts{BaseURL: "http://example.com", Client: client})
			svc := NewMovieService(api, nil)

			_, err := svc.Genres(context.Background())
			if !errors.Is(err, shared.ErrFetchFailed) {
				t.Errorf("expected shared.ErrFetchFailed, got %v", err)
			}
		})

		t.Run("Malformed Success Body Becomes Unknown Error", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("not json at all"))
			}, nil)

			_, err := svc.MovieDetails(context.Background(), 42)
			if !errors.Is(err, shared.ErrUnknown) {
				t.Errorf("expected shared.ErrUnknown, got %v", err)
			}
		})
	})

	t.Run("MovieDetails", func(t *testing.T) {
		t.Run("Carries Identity Header When Logged In", func(t *testing.T) {
			var gotUser, gotPath string
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				gotUser = r.Header.Get("X-Username")
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(models.MovieDetails{Movie: models.Movie{ID: 42, Title: "Sholay"}})
			}, tu.StaticSession{User: "alice"})

			details, err := svc.MovieDetails(context.Background(), 42)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotUser != "alice" {
				t.Errorf("expected X-Username 'alice', got %q", gotUser)
			}
			if gotPath != "/movie/42" {
				t.Errorf("expected path '/movie/42', got %s", gotPath)
			}
			if details.Title != "Sholay" {
				t.Errorf("expected title 'Sholay', got %s", details.Title)
			}
		})
	})

	t.Run("SearchMovies", func(t *testing.T) {
		page := models.MoviePage{
			Results: []models.Movie{
				{ID: 1, Title: "Action Movie", GenreIDs: []int{28}},
				{ID: 2, Title: "Drama Movie", GenreIDs: []int{18}},
				{ID: 3, Title: "Action Drama", GenreIDs: []int{28, 18}},
			},
			TotalResults: 60,
			TotalPages:   3,
			Page:         1,
		}

		t.Run("Sends Query Page And Year Params", func(t *testing.T) {
			var got map[string]string
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				got = map[string]string{
					"query": r.URL.Query().Get("query"),
					"page":  r.URL.Query().Get("page"),
					"year":  r.URL.Query().Get("year"),
				}
				json.NewEncoder(w).Encode(page)
			}, nil)

			if _, err := svc.SearchMovies(context.Background(), "sholay", 2, "1975", nil); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got["query"] != "sholay" || got["page"] != "2" || got["year"] != "1975" {
				t.Errorf("unexpected params: %v", got)
			}
		})

		t.Run("Clamps Page Below One", func(t *testing.T) {
			var gotPage string
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				gotPage = r.URL.Query().Get("page")
				json.NewEncoder(w).Encode(page)
			}, nil)

			svc.SearchMovies(context.Background(), "sholay", 0, "", nil)
			if gotPage != "1" {
				t.Errorf("expected page clamped to 1, got %s", gotPage)
			}
		})

		t.Run("Genre Filter Applies Client-Side", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("genres") != "" {
					t.Error("genre filter must not be sent to the server")
				}
				json.NewEncoder(w).Encode(page)
			}, nil)

			result, err := svc.SearchMovies(context.Background(), "movie", 1, "", []int{28})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(result.Results) != 2 {
				t.Fatalf("expected 2 filtered results, got %d", len(result.Results))
			}
			for _, movie := range result.Results {
				if !movie.HasGenre([]int{28}) {
					t.Errorf("movie %d does not carry the filter genre", movie.ID)
				}
			}
			if result.TotalResults != 2 {
				t.Errorf("expected total_results recomputed to 2, got %d", result.TotalResults)
			}
			// total_pages keeps the server's unfiltered paging
			if result.TotalPages != 3 {
				t.Errorf("expected total_pages untouched at 3, got %d", result.TotalPages)
			}
		})

		t.Run("No Filter Leaves Page Untouched", func(t *testing.T) {
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(page)
			}, nil)

			result, err := svc.SearchMovies(context.Background(), "movie", 1, "", nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(result.Results) != 3 || result.TotalResults != 60 {
				t.Errorf("expected unfiltered page, got %d results / %d total", len(result.Results), result.TotalResults)
			}
		})
	})

	t.Run("Genres", func(t *testing.T) {
		t.Run("Repeated Calls Return Identical Data", func(t *testing.T) {
			calls := 0
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				json.NewEncoder(w).Encode(models.GenreList{Genres: []models.Genre{{ID: 28, Name: "Action"}}})
			}, nil)

			first, err := svc.Genres(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			second, err := svc.Genres(context.Background())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if len(first.Genres) != len(second.Genres) || first.Genres[0] != second.Genres[0] {
				t.Error("expected identical genre data across calls")
			}
			if calls != 2 {
				t.Errorf("expected 2 upstream calls, got %d", calls)
			}
		})
	})

	t.Run("MoviesByGenre", func(t *testing.T) {
		t.Run("Page Beyond Bounds Passed Through", func(t *testing.T) {
			var gotPage, gotPath string
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				gotPage = r.URL.Query().Get("page")
				gotPath = r.URL.Path
				json.NewEncoder(w).Encode(models.MoviePage{Page: 999, TotalPages: 3})
			}, nil)

			result, err := svc.MoviesByGenre(context.Background(), 28, 999)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotPage != "999" {
				t.Errorf("expected page passed through as 999, got %s", gotPage)
			}
			if gotPath != "/movies/genre/28" {
				t.Errorf("expected path '/movies/genre/28', got %s", gotPath)
			}
			if len(result.Results) != 0 {
				t.Errorf("expected empty results, got %d", len(result.Results))
			}
		})
	})

	t.Run("AllGenresWithMovies", func(t *testing.T) {
		t.Run("Defaults Limit To Five", func(t *testing.T) {
			var gotLimit string
			svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("limit_per_genre")
				json.NewEncoder(w).Encode(models.AllGenres{})
			}, nil)

			if _, err := svc.AllGenresWithMovies(context.Background(), 0); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if gotLimit != "5" {
				t.Errorf("expected limit_per_genre 5, got %s", gotLimit)
			}
		})
	})
}
