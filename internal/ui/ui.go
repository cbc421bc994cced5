package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/session"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	HomeView ViewState = iota
	GenreView
	SearchView
	DetailsView
)

// fetchState is the lifecycle of each view's single in-flight request.
type fetchState int

const (
	stateIdle fetchState = iota
	stateLoading
	stateSuccess
	stateError
)

// Model represents the TUI application state. Each view owns its own fetch
// lifecycle and a sequence counter; responses carry the sequence they were
// issued with and are dropped when a newer request has been started since,
// so a slow response can never overwrite fresher state.
type Model struct {
	ctx     context.Context
	catalog services.Catalog
	auth    *session.Auth
	logger  *log.Logger

	width  int
	height int
	view   ViewState
	keys   keyMap
	help   help.Model

	// home
	homeState fetchState
	homeErr   error
	homeSeq   int
	genreRows []models.GenreWithMovies
	heroMovie *models.Movie
	heroGenre string
	genreList list.Model

	// genre
	genreID    int
	genreName  string
	genrePage  int
	genreTotal int
	genreState fetchState
	genreErr   error
	genreSeq   int
	movieList  list.Model

	// search
	queryInput   textinput.Model
	yearInput    textinput.Model
	searchQuery  models.SearchQuery
	searchList   list.Model
	searchState  fetchState
	searchErr    error
	searchSeq    int
	searchTotal  int
	genreCatalog []models.Genre
	selected     map[int]bool
	filterOpen   bool
	filterCursor int
	searchFocus  searchFocus

	// details
	movieID      int
	details      *models.MovieDetails
	detailsState fetchState
	detailsErr   error
	detailsSeq   int
	fromView     ViewState
}

type searchFocus int

const (
	focusQuery searchFocus = iota
	focusYear
	focusResults
)

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog services.Catalog, auth *session.Auth, logger *log.Logger) *Model {
	query := textinput.New()
	query.Placeholder = "Search for movies..."
	query.CharLimit = 120
	query.Focus()

	year := textinput.New()
	year.Placeholder = "Year"
	year.CharLimit = 4

	return &Model{
		ctx:        ctx,
		catalog:    catalog,
		auth:       auth,
		logger:     logger,
		view:       HomeView,
		keys:       newKeyMap(),
		help:       help.New(),
		queryInput: query,
		yearInput:  year,
		selected:   map[int]bool{},
	}
}

// Init kicks off the single homepage fetch.
func (m *Model) Init() tea.Cmd {
	return m.fetchHome()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			return m, m.logout()
		}
		switch m.view {
		case HomeView:
			return m.handleHomeKeys(msg)
		case GenreView:
			return m.handleGenreKeys(msg)
		case SearchView:
			return m.handleSearchKeys(msg)
		case DetailsView:
			return m.handleDetailsKeys(msg)
		}

	case homeFetchedMsg:
		return m.onHomeFetched(msg)
	case genreNameFetchedMsg:
		return m.onGenreNameFetched(msg)
	case genreMoviesFetchedMsg:
		return m.onGenreMoviesFetched(msg)
	case genreCatalogFetchedMsg:
		return m.onGenreCatalogFetched(msg)
	case searchFetchedMsg:
		return m.onSearchFetched(msg)
	case detailsFetchedMsg:
		return m.onDetailsFetched(msg)
	}

	return m, nil
}

func (m *Model) resizeLists() {
	w, h := m.width-4, m.height-10
	if w < 0 || h < 0 {
		return
	}
	if m.genreList.Width() > 0 || len(m.genreList.Items()) > 0 {
		m.genreList.SetSize(w, h)
	}
	if m.movieList.Width() > 0 || len(m.movieList.Items()) > 0 {
		m.movieList.SetSize(w, h)
	}
	if m.searchList.Width() > 0 || len(m.searchList.Items()) > 0 {
		m.searchList.SetSize(w, h-4)
	}
}

// logout clears the session and discards every piece of cached state tied to
// the old identity, so everything refetches anonymously.
func (m *Model) logout() tea.Cmd {
	if m.auth == nil {
		return nil
	}
	if err := m.auth.Logout(); err != nil {
		m.logger.Errorf("logout failed: %v", err)
		return nil
	}

	fresh := NewModel(m.ctx, m.catalog, m.auth, m.logger)
	fresh.width, fresh.height = m.width, m.height
	*m = *fresh

	return m.fetchHome()
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.view = SearchView
		m.searchFocus = focusQuery
		m.queryInput.Focus()
		m.yearInput.Blur()
		return m, m.ensureGenreCatalog()
	case "r":
		if m.homeState == stateError {
			return m, m.fetchHome()
		}
	case "t":
		if m.heroMovie != nil {
			return m, m.openDetails(m.heroMovie.ID, HomeView)
		}
	case "enter":
		if selected, ok := m.genreList.SelectedItem().(genreItem); ok {
			return m, m.openGenre(selected.genre.ID, selected.genre.Name)
		}
	}

	if m.homeState == stateSuccess {
		var cmd tea.Cmd
		m.genreList, cmd = m.genreList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleGenreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		return m, nil
	case "right", "n":
		// Clamped to the server's page count; at the boundary this is a no-op.
		if m.genreState == stateSuccess && m.genrePage < m.genreTotal {
			m.genrePage++
			return m, m.fetchGenreMovies()
		}
		return m, nil
	case "left", "p":
		if m.genreState == stateSuccess && m.genrePage > 1 {
			m.genrePage--
			return m, m.fetchGenreMovies()
		}
		return m, nil
	case "r":
		if m.genreState == stateError {
			return m, m.fetchGenreMovies()
		}
	case "enter":
		if selected, ok := m.movieList.SelectedItem().(movieItem); ok {
			return m, m.openDetails(selected.movie.ID, GenreView)
		}
	}

	if m.genreState == stateSuccess {
		var cmd tea.Cmd
		m.movieList, cmd = m.movieList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterOpen {
		return m.handleFilterKeys(msg)
	}

	switch msg.String() {
	case "esc":
		m.view = HomeView
		return m, nil
	case "tab":
		m.cycleSearchFocus()
		return m, nil
	case "ctrl+f":
		m.filterOpen = true
		m.filterCursor = 0
		return m, m.ensureGenreCatalog()
	case "ctrl+x":
		return m, m.clearFilters()
	case "ctrl+n":
		// Load more advances the page and replaces the current results;
		// it does not append.
		if m.searchState == stateSuccess && m.searchQuery.Page < m.searchTotal {
			next := m.searchQuery
			next.Page++
			return m, m.performSearch(next)
		}
		return m, nil
	case "enter":
		if m.searchFocus == focusResults {
			if selected, ok := m.searchList.SelectedItem().(movieItem); ok {
				return m, m.openDetails(selected.movie.ID, SearchView)
			}
			return m, nil
		}
		return m, m.submitSearch()
	}

	switch m.searchFocus {
	case focusQuery:
		var cmd tea.Cmd
		m.queryInput, cmd = m.queryInput.Update(msg)
		return m, cmd
	case focusYear:
		var cmd tea.Cmd
		m.yearInput, cmd = m.yearInput.Update(msg)
		return m, cmd
	default:
		if m.searchState == stateSuccess {
			var cmd tea.Cmd
			m.searchList, cmd = m.searchList.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+f":
		m.filterOpen = false
		return m, nil
	case "down", "j":
		if m.filterCursor < len(m.genreCatalog)-1 {
			m.filterCursor++
		}
		return m, nil
	case "up", "k":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
		return m, nil
	case " ":
		if m.filterCursor < len(m.genreCatalog) {
			id := m.genreCatalog[m.filterCursor].ID
			m.selected[id] = !m.selected[id]
			if !m.selected[id] {
				delete(m.selected, id)
			}
			// Toggling a filter re-issues the search from page 1.
			if m.searchQuery.Text != "" {
				q := m.buildQuery(m.searchQuery.Text)
				return m, m.performSearch(q)
			}
		}
		return m, nil
	case "ctrl+x":
		return m, m.clearFilters()
	}
	return m, nil
}

func (m *Model) handleDetailsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = m.fromView
		return m, nil
	case "r":
		if m.detailsState == stateError {
			return m, m.fetchDetails()
		}
	case "o":
		if m.details != nil {
			if trailer := BestTrailer(m.details.Videos.Results); trailer != nil {
				return m, m.openTrailer(trailer)
			}
		}
	}
	return m, nil
}

func (m *Model) cycleSearchFocus() {
	switch m.searchFocus {
	case focusQuery:
		m.searchFocus = focusYear
		m.queryInput.Blur()
		m.yearInput.Focus()
	case focusYear:
		m.searchFocus = focusResults
		m.yearInput.Blur()
	default:
		m.searchFocus = focusQuery
		m.queryInput.Focus()
	}
}

func (m *Model) selectedGenreIDs() []int {
	// Catalog order keeps the encoded form stable for the same selection.
	ids := make([]int, 0, len(m.selected))
	for _, genre := range m.genreCatalog {
		if m.selected[genre.ID] {
			ids = append(ids, genre.ID)
		}
	}
	return ids
}

func (m *Model) buildQuery(text string) models.SearchQuery {
	return models.SearchQuery{
		Text:     text,
		Page:     1,
		Year:     m.yearInput.Value(),
		GenreIDs: m.selectedGenreIDs(),
	}
}

func (m *Model) submitSearch() tea.Cmd {
	text := m.queryInput.Value()
	if text == "" {
		return nil
	}
	return m.performSearch(m.buildQuery(text))
}

func (m *Model) clearFilters() tea.Cmd {
	m.selected = map[int]bool{}
	m.yearInput.SetValue("")
	m.filterOpen = false
	if m.searchQuery.Text != "" {
		return m.performSearch(m.buildQuery(m.searchQuery.Text))
	}
	return nil
}
