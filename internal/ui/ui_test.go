package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
	tu "github.com/desertthunder/mvx/internal/testing"
)

func newTestModel(catalog *tu.MockCatalog) *Model {
	return NewModel(context.Background(), catalog, nil, shared.NewLogger(nil))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel(t *testing.T) {
	sampleGenres := &models.AllGenres{
		Genres: []models.GenreWithMovies{
			{ID: 28, Name: "Action", Movies: []models.Movie{{ID: 1, Title: "Sholay"}}},
		},
	}

	t.Run("Home", func(t *testing.T) {
		t.Run("Fetch Populates Rows And Hero", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})
			cmd := m.fetchHome()

			m.Update(cmd().(homeFetchedMsg))
			if m.homeState != stateSuccess {
				t.Fatalf("expected success state, got %v", m.homeState)
			}

			m2 := newTestModel(&tu.MockCatalog{AllGenresFn: func(ctx context.Context, limit int) (*models.AllGenres, error) {
				return sampleGenres, nil
			}})
			cmd = m2.fetchHome()
			m2.Update(cmd())

			if len(m2.genreRows) != 1 {
				t.Fatalf("expected 1 genre row, got %d", len(m2.genreRows))
			}
			if m2.heroMovie == nil || m2.heroMovie.Title != "Sholay" {
				t.Errorf("expected hero movie picked, got %+v", m2.heroMovie)
			}
		})

		t.Run("Stale Response Dropped", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})

			m.fetchHome()
			stale := homeFetchedMsg{seq: m.homeSeq, genres: sampleGenres}
			m.fetchHome() // supersedes the first request

			m.Update(stale)
			if m.homeState != stateLoading {
				t.Errorf("expected loading state after stale response, got %v", m.homeState)
			}
			if len(m.genreRows) != 0 {
				t.Error("expected stale data discarded")
			}
		})

		t.Run("Error Requires Manual Retry", func(t *testing.T) {
			boom := errors.New("boom")
			m := newTestModel(&tu.MockCatalog{AllGenresFn: func(ctx context.Context, limit int) (*models.AllGenres, error) {
				return nil, boom
			}})

			cmd := m.fetchHome()
			m.Update(cmd())

			if m.homeState != stateError {
				t.Fatalf("expected error state, got %v", m.homeState)
			}

			_, retry := m.handleHomeKeys(keyMsg("r"))
			if retry == nil {
				t.Error("expected retry command on r in error state")
			}
		})
	})

	t.Run("Genre", func(t *testing.T) {
		pageOf := func(page, total int) *models.MoviePage {
			return &models.MoviePage{
				Results:    []models.Movie{{ID: page, Title: "Movie"}},
				Page:       page,
				TotalPages: total,
			}
		}

		openOnPage := func(t *testing.T, total int) *Model {
			t.Helper()
			m := newTestModel(&tu.MockCatalog{ByGenreFn: func(ctx context.Context, genreID, page int) (*models.MoviePage, error) {
				return pageOf(page, total), nil
			}})
			m.openGenre(28, "Action")
			m.Update(genreMoviesFetchedMsg{seq: m.genreSeq, page: pageOf(1, total)})
			return m
		}

		t.Run("Next Page Advances Within Bounds", func(t *testing.T) {
			m := openOnPage(t, 3)

			_, cmd := m.handleGenreKeys(keyMsg("right"))
			if cmd == nil {
				t.Fatal("expected fetch command for next page")
			}
			if m.genrePage != 2 {
				t.Errorf("expected page 2, got %d", m.genrePage)
			}
		})

		t.Run("Next Page Is No-Op At Last Page", func(t *testing.T) {
			m := openOnPage(t, 1)

			_, cmd := m.handleGenreKeys(keyMsg("right"))
			if cmd != nil {
				t.Error("expected no command at page boundary")
			}
			if m.genrePage != 1 {
				t.Errorf("expected page unchanged at 1, got %d", m.genrePage)
			}
		})

		t.Run("Previous Page Is No-Op At First Page", func(t *testing.T) {
			m := openOnPage(t, 3)

			_, cmd := m.handleGenreKeys(keyMsg("left"))
			if cmd != nil {
				t.Error("expected no command at first page")
			}
			if m.genrePage != 1 {
				t.Errorf("expected page unchanged at 1, got %d", m.genrePage)
			}
		})

		t.Run("Stale Page Response Dropped", func(t *testing.T) {
			m := openOnPage(t, 3)

			m.genrePage = 2
			m.fetchGenreMovies()
			stale := genreMoviesFetchedMsg{seq: m.genreSeq, page: pageOf(2, 3)}
			m.genrePage = 3
			m.fetchGenreMovies() // second request supersedes

			m.Update(stale)
			if m.genreState != stateLoading {
				t.Errorf("expected loading state after stale response, got %v", m.genreState)
			}
		})

		t.Run("Cosmetic Name Resolution", func(t *testing.T) {
			m := openOnPage(t, 3)
			m.genreName = ""

			m.Update(genreNameFetchedMsg{seq: m.genreSeq, name: "Action"})
			if m.genreName != "Action" {
				t.Errorf("expected resolved name, got %q", m.genreName)
			}

			// An empty resolution leaves the name alone.
			m.Update(genreNameFetchedMsg{seq: m.genreSeq})
			if m.genreName != "Action" {
				t.Errorf("expected name kept, got %q", m.genreName)
			}
		})
	})

	t.Run("Search", func(t *testing.T) {
		resultPage := func(ids ...int) *models.MoviePage {
			movies := make([]models.Movie, len(ids))
			for i, id := range ids {
				movies[i] = models.Movie{ID: id, Title: "Movie"}
			}
			return &models.MoviePage{Results: movies, Page: 1, TotalPages: 3, TotalResults: 60}
		}

		t.Run("Load More Replaces Results", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{SearchFn: func(ctx context.Context, query string, page int, year string, genreIDs []int) (*models.MoviePage, error) {
				p := resultPage(page*10, page*10+1)
				p.Page = page
				return p, nil
			}})

			q := models.SearchQuery{Text: "movie", Page: 1}
			cmd := m.performSearch(q)
			m.Update(cmd())
			if got := len(m.searchList.Items()); got != 2 {
				t.Fatalf("expected 2 items after first page, got %d", got)
			}

			_, cmd = m.handleSearchKeys(keyMsg("ctrl+n"))
			if cmd == nil {
				t.Fatal("expected load-more command")
			}
			m.Update(cmd())

			// Replaced wholesale, not appended.
			if got := len(m.searchList.Items()); got != 2 {
				t.Errorf("expected 2 items after load more, got %d", got)
			}
			if m.searchQuery.Page != 2 {
				t.Errorf("expected page advanced to 2, got %d", m.searchQuery.Page)
			}
		})

		t.Run("Load More Stops At Last Page", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})
			m.searchState = stateSuccess
			m.searchQuery = models.SearchQuery{Text: "movie", Page: 3}
			m.searchTotal = 3

			_, cmd := m.handleSearchKeys(keyMsg("ctrl+n"))
			if cmd != nil {
				t.Error("expected no command at last page")
			}
		})

		t.Run("Filter Toggle Restarts From Page One", func(t *testing.T) {
			var gotPage int
			var gotGenres []int
			m := newTestModel(&tu.MockCatalog{SearchFn: func(ctx context.Context, query string, page int, year string, genreIDs []int) (*models.MoviePage, error) {
				gotPage, gotGenres = page, genreIDs
				return resultPage(1), nil
			}})

			m.genreCatalog = []models.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}
			m.searchQuery = models.SearchQuery{Text: "movie", Page: 3}
			m.searchState = stateSuccess
			m.filterOpen = true
			m.filterCursor = 0

			_, cmd := m.handleFilterKeys(keyMsg(" "))
			if cmd == nil {
				t.Fatal("expected re-search command after filter toggle")
			}
			m.Update(cmd())

			if gotPage != 1 {
				t.Errorf("expected search restarted at page 1, got %d", gotPage)
			}
			if len(gotGenres) != 1 || gotGenres[0] != 28 {
				t.Errorf("expected genre filter [28], got %v", gotGenres)
			}
		})

		t.Run("Selected Genres Keep Catalog Order", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})
			m.genreCatalog = []models.Genre{{ID: 28}, {ID: 18}, {ID: 35}}
			m.selected = map[int]bool{35: true, 28: true}

			ids := m.selectedGenreIDs()
			if len(ids) != 2 || ids[0] != 28 || ids[1] != 35 {
				t.Errorf("expected [28 35], got %v", ids)
			}
		})

		t.Run("Stale Search Response Dropped", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})

			m.performSearch(models.SearchQuery{Text: "first", Page: 1})
			stale := searchFetchedMsg{
				seq:   m.searchSeq,
				query: models.SearchQuery{Text: "first", Page: 1},
				page:  resultPage(1),
			}
			m.performSearch(models.SearchQuery{Text: "second", Page: 1})

			m.Update(stale)
			if m.searchState != stateLoading {
				t.Errorf("expected loading state after stale response, got %v", m.searchState)
			}
			if m.searchQuery.Text == "first" {
				t.Error("expected stale query state discarded")
			}
		})

		t.Run("Empty Query Does Not Search", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})
			if cmd := m.submitSearch(); cmd != nil {
				t.Error("expected no command for empty query")
			}
		})
	})

	t.Run("Details", func(t *testing.T) {
		t.Run("Escape Returns To Origin View", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})
			cmd := m.openDetails(42, GenreView)
			m.Update(cmd())

			if m.view != DetailsView {
				t.Fatalf("expected details view, got %v", m.view)
			}

			m.handleDetailsKeys(tea.KeyMsg{Type: tea.KeyEsc})
			if m.view != GenreView {
				t.Errorf("expected return to genre view, got %v", m.view)
			}
		})

		t.Run("Stale Details Response Dropped", func(t *testing.T) {
			m := newTestModel(&tu.MockCatalog{})

			m.openDetails(1, HomeView)
			stale := detailsFetchedMsg{seq: m.detailsSeq, details: &models.MovieDetails{Movie: models.Movie{ID: 1}}}
			m.openDetails(2, HomeView)

			m.Update(stale)
			if m.details != nil {
				t.Error("expected stale details discarded")
			}
		})
	})
}
