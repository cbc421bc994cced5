package ui

import (
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

type homeFetchedMsg struct {
	seq    int
	genres *models.AllGenres
	err    error
}

type genreNameFetchedMsg struct {
	seq  int
	name string
}

type genreMoviesFetchedMsg struct {
	seq  int
	page *models.MoviePage
	err  error
}

type genreCatalogFetchedMsg struct {
	genres []models.Genre
	err    error
}

type searchFetchedMsg struct {
	seq   int
	query models.SearchQuery
	page  *models.MoviePage
	err   error
}

type detailsFetchedMsg struct {
	seq     int
	details *models.MovieDetails
	err     error
}

// fetchHome issues the single homepage request. The home view never
// refetches on re-entry; only an explicit retry or logout restarts it.
func (m *Model) fetchHome() tea.Cmd {
	m.homeSeq++
	seq := m.homeSeq
	m.homeState = stateLoading
	m.homeErr = nil

	return func() tea.Msg {
		all, err := m.catalog.AllGenresWithMovies(m.ctx, 5)
		return homeFetchedMsg{seq: seq, genres: all, err: err}
	}
}

func (m *Model) onHomeFetched(msg homeFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.homeSeq {
		m.logger.Debugf("dropping stale home response (seq %d, current %d)", msg.seq, m.homeSeq)
		return m, nil
	}

	if msg.err != nil {
		m.homeState = stateError
		m.homeErr = msg.err
		return m, nil
	}

	m.homeState = stateSuccess
	m.genreRows = msg.genres.Genres
	m.pickHero()

	items := make([]list.Item, len(m.genreRows))
	for i, genre := range m.genreRows {
		items[i] = genreItem{genre: genre}
	}
	m.genreList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.genreList.Title = "Browse by Genre"
	m.genreList.SetShowHelp(false)
	m.resizeLists()

	return m, nil
}

// pickHero chooses one random genre and one random movie within it for the
// featured slot.
func (m *Model) pickHero() {
	m.heroMovie = nil
	m.heroGenre = ""

	withMovies := make([]models.GenreWithMovies, 0, len(m.genreRows))
	for _, genre := range m.genreRows {
		if len(genre.Movies) > 0 {
			withMovies = append(withMovies, genre)
		}
	}
	if len(withMovies) == 0 {
		return
	}

	genre := withMovies[rand.IntN(len(withMovies))]
	movie := genre.Movies[rand.IntN(len(genre.Movies))]
	m.heroMovie = &movie
	m.heroGenre = genre.Name
}

// openGenre enters the genre view and starts its two independent fetches:
// the display name (resolved by scanning the genre catalog) and the first
// movie page. Page changes later re-trigger only the movie fetch.
func (m *Model) openGenre(genreID int, knownName string) tea.Cmd {
	m.view = GenreView
	m.genreID = genreID
	m.genreName = knownName
	m.genrePage = 1
	m.genreTotal = 1

	cmds := []tea.Cmd{m.fetchGenreMovies()}
	if knownName == "" {
		cmds = append(cmds, m.fetchGenreName())
	}
	return tea.Batch(cmds...)
}

func (m *Model) fetchGenreName() tea.Cmd {
	seq := m.genreSeq
	genreID := m.genreID

	return func() tea.Msg {
		catalog, err := m.catalog.Genres(m.ctx)
		if err != nil {
			// Name resolution is cosmetic; the movie fetch carries the error.
			return genreNameFetchedMsg{seq: seq}
		}
		for _, genre := range catalog.Genres {
			if genre.ID == genreID {
				return genreNameFetchedMsg{seq: seq, name: genre.Name}
			}
		}
		return genreNameFetchedMsg{seq: seq}
	}
}

func (m *Model) onGenreNameFetched(msg genreNameFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.genreSeq || msg.name == "" {
		return m, nil
	}
	m.genreName = msg.name
	if m.genreState == stateSuccess {
		m.movieList.Title = m.genreName + " Movies"
	}
	return m, nil
}

func (m *Model) fetchGenreMovies() tea.Cmd {
	m.genreSeq++
	seq := m.genreSeq
	m.genreState = stateLoading
	m.genreErr = nil
	genreID, page := m.genreID, m.genrePage

	return func() tea.Msg {
		result, err := m.catalog.MoviesByGenre(m.ctx, genreID, page)
		return genreMoviesFetchedMsg{seq: seq, page: result, err: err}
	}
}

func (m *Model) onGenreMoviesFetched(msg genreMoviesFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.genreSeq {
		m.logger.Debugf("dropping stale genre response (seq %d, current %d)", msg.seq, m.genreSeq)
		return m, nil
	}

	if msg.err != nil {
		m.genreState = stateError
		m.genreErr = msg.err
		return m, nil
	}

	m.genreState = stateSuccess
	m.genreTotal = msg.page.TotalPages

	title := "Movies"
	if m.genreName != "" {
		title = m.genreName + " Movies"
	}
	m.movieList = list.New(movieItems(msg.page.Results), list.NewDefaultDelegate(), 0, 0)
	m.movieList.Title = title
	m.movieList.SetShowHelp(false)
	m.resizeLists()

	return m, nil
}

// ensureGenreCatalog fetches the genre catalog once for the filter panel.
func (m *Model) ensureGenreCatalog() tea.Cmd {
	if m.genreCatalog != nil {
		return nil
	}
	return func() tea.Msg {
		catalog, err := m.catalog.Genres(m.ctx)
		if err != nil {
			return genreCatalogFetchedMsg{err: err}
		}
		return genreCatalogFetchedMsg{genres: catalog.Genres}
	}
}

func (m *Model) onGenreCatalogFetched(msg genreCatalogFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Errorf("failed to fetch genre catalog: %v", msg.err)
		return m, nil
	}
	m.genreCatalog = msg.genres
	return m, nil
}

// performSearch issues one search request for the given query state. The
// response replaces the current results wholesale.
func (m *Model) performSearch(query models.SearchQuery) tea.Cmd {
	m.searchSeq++
	seq := m.searchSeq
	m.searchState = stateLoading
	m.searchErr = nil

	return func() tea.Msg {
		result, err := m.catalog.SearchMovies(m.ctx, query.Text, query.Page, query.Year, query.GenreIDs)
		return searchFetchedMsg{seq: seq, query: query, page: result, err: err}
	}
}

func (m *Model) onSearchFetched(msg searchFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.searchSeq {
		m.logger.Debugf("dropping stale search response (seq %d, current %d)", msg.seq, m.searchSeq)
		return m, nil
	}

	if msg.err != nil {
		m.searchState = stateError
		m.searchErr = msg.err
		return m, nil
	}

	m.searchState = stateSuccess
	m.searchQuery = msg.query
	m.searchTotal = msg.page.TotalPages

	m.searchList = list.New(movieItems(msg.page.Results), list.NewDefaultDelegate(), 0, 0)
	m.searchList.Title = "Results for \"" + msg.query.Text + "\""
	m.searchList.SetShowHelp(false)
	m.resizeLists()

	m.logger.Debugf("search state: %s", msg.query.Encode())

	return m, nil
}

// openDetails enters the details view for one movie, remembering where to
// return on escape.
func (m *Model) openDetails(movieID int, from ViewState) tea.Cmd {
	m.view = DetailsView
	m.fromView = from
	m.movieID = movieID
	m.details = nil
	return m.fetchDetails()
}

func (m *Model) fetchDetails() tea.Cmd {
	m.detailsSeq++
	seq := m.detailsSeq
	m.detailsState = stateLoading
	m.detailsErr = nil
	movieID := m.movieID

	return func() tea.Msg {
		details, err := m.catalog.MovieDetails(m.ctx, movieID)
		return detailsFetchedMsg{seq: seq, details: details, err: err}
	}
}

func (m *Model) onDetailsFetched(msg detailsFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.detailsSeq {
		m.logger.Debugf("dropping stale details response (seq %d, current %d)", msg.seq, m.detailsSeq)
		return m, nil
	}

	if msg.err != nil {
		m.detailsState = stateError
		m.detailsErr = msg.err
		return m, nil
	}

	m.detailsState = stateSuccess
	m.details = msg.details
	return m, nil
}

func (m *Model) openTrailer(trailer *models.Video) tea.Cmd {
	url := TrailerURL(trailer.Key)
	return func() tea.Msg {
		if err := shared.OpenBrowser(url); err != nil {
			m.logger.Errorf("failed to open trailer: %v", err)
		}
		return nil
	}
}
