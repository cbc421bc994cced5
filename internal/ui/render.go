package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/desertthunder/mvx/internal/shared"
)

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case HomeView:
		body = m.renderHome()
	case GenreView:
		body = m.renderGenre()
	case SearchView:
		body = m.renderSearch()
	case DetailsView:
		body = m.renderDetails()
	}

	return m.renderIdentity() + body
}

func (m *Model) renderIdentity() string {
	if m.auth != nil {
		if user, ok := m.auth.CurrentUser(); ok {
			return styles.help.Render(fmt.Sprintf("signed in as %s", user.Username)) + "\n"
		}
	}
	return styles.help.Render("browsing anonymously") + "\n"
}

func (m *Model) renderHome() string {
	switch m.homeState {
	case stateLoading, stateIdle:
		return "\nLoading genres and movies...\n"
	case stateError:
		return styles.err.Render(fmt.Sprintf("Error: %v", m.homeErr)) + "\n\n" +
			m.help.ShortHelpView([]key.Binding{m.keys.retry, m.keys.quit})
	}

	var b strings.Builder

	if m.heroMovie != nil {
		b.WriteString(styles.title.Render("★ " + m.heroMovie.Title))
		b.WriteString("\n")
		meta := shared.FormatRating(m.heroMovie.VoteAverage)
		if year := shared.ReleaseYear(m.heroMovie.ReleaseDate); year != "" {
			meta = fmt.Sprintf("%s • %s", year, meta)
		}
		b.WriteString(styles.warn.Render(fmt.Sprintf("%s • featured in %s", meta, m.heroGenre)))
		b.WriteString("\n")
		if m.heroMovie.Overview != "" {
			overview := m.heroMovie.Overview
			if len(overview) > 200 {
				overview = overview[:197] + "..."
			}
			b.WriteString(overview)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.genreList.View())
	b.WriteString("\n")

	heroKey := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "featured movie"))
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.search, heroKey, m.keys.quit}))

	return b.String()
}

func (m *Model) renderGenre() string {
	switch m.genreState {
	case stateLoading, stateIdle:
		return fmt.Sprintf("\nLoading %s movies...\n", m.genreName)
	case stateError:
		return styles.err.Render(fmt.Sprintf("Error: %v", m.genreErr)) + "\n\n" +
			m.help.ShortHelpView([]key.Binding{m.keys.retry, m.keys.back, m.keys.quit})
	}

	var b strings.Builder
	b.WriteString(m.movieList.View())
	b.WriteString("\n")
	if m.genreTotal > 1 {
		b.WriteString(styles.warn.Render(fmt.Sprintf("Page %d of %d", m.genrePage, m.genreTotal)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.prevPg, m.keys.nextPg, m.keys.back, m.keys.quit}))

	return b.String()
}

func (m *Model) renderSearch() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Search Movies"))
	b.WriteString("\n")
	b.WriteString(m.queryInput.View())
	b.WriteString("   ")
	b.WriteString(m.yearInput.View())
	b.WriteString("\n")

	if m.filterOpen {
		b.WriteString(m.renderFilterPanel())
		return b.String()
	}

	if active := m.renderActiveFilters(); active != "" {
		b.WriteString(active)
		b.WriteString("\n")
	}

	switch m.searchState {
	case stateLoading:
		b.WriteString("\nSearching...\n")
	case stateError:
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.searchErr)))
		b.WriteString("\n")
	case stateSuccess:
		b.WriteString("\n")
		b.WriteString(m.searchList.View())
		b.WriteString("\n")
		b.WriteString(styles.help.Render("?" + m.searchQuery.Encode()))
		b.WriteString("\n")
		if m.searchQuery.Page < m.searchTotal {
			b.WriteString(styles.warn.Render(fmt.Sprintf("Page %d of %d", m.searchQuery.Page, m.searchTotal)))
			b.WriteString("\n")
		}
	default:
		b.WriteString("\nEnter a movie title to start searching\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.filter, m.keys.more, m.keys.back, m.keys.quit}))

	return b.String()
}

func (m *Model) renderActiveFilters() string {
	parts := []string{}
	if year := m.yearInput.Value(); year != "" {
		parts = append(parts, "Year: "+year)
	}
	for _, genre := range m.genreCatalog {
		if m.selected[genre.ID] {
			parts = append(parts, genre.Name)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return styles.warn.Render("Active filters: " + strings.Join(parts, ", "))
}

func (m *Model) renderFilterPanel() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.title.Render("Genres"))
	b.WriteString("\n")

	if len(m.genreCatalog) == 0 {
		b.WriteString("Loading genres...\n")
		return b.String()
	}

	for i, genre := range m.genreCatalog {
		cursor := "  "
		if i == m.filterCursor {
			cursor = "> "
		}
		mark := "[ ]"
		if m.selected[genre.ID] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", cursor, mark, genre.Name)
		if m.selected[genre.ID] {
			line = styles.ok.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	toggleKey := key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.up, m.keys.down, toggleKey, m.keys.clear, m.keys.back}))

	return b.String()
}

func (m *Model) renderDetails() string {
	switch m.detailsState {
	case stateLoading, stateIdle:
		return "\nLoading movie details...\n"
	case stateError:
		return styles.err.Render(fmt.Sprintf("Error: %v", m.detailsErr)) + "\n\n" +
			m.help.ShortHelpView([]key.Binding{m.keys.retry, m.keys.back, m.keys.quit})
	}

	d := m.details
	var b strings.Builder

	b.WriteString(styles.title.Render(d.Title))
	b.WriteString("\n")

	meta := []string{}
	if year := shared.ReleaseYear(d.ReleaseDate); year != "" {
		meta = append(meta, year)
	}
	meta = append(meta, shared.FormatRuntime(d.Runtime), shared.FormatRating(d.VoteAverage))
	b.WriteString(styles.warn.Render(strings.Join(meta, " • ")))
	b.WriteString("\n")

	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, genre := range d.Genres {
			names[i] = genre.Name
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	if d.Overview != "" {
		b.WriteString("\n")
		b.WriteString(d.Overview)
		b.WriteString("\n")
	}

	for _, crew := range d.Credits.Crew {
		if crew.Job == "Director" {
			b.WriteString(fmt.Sprintf("\nDirector: %s\n", crew.Name))
			break
		}
	}

	if len(d.Credits.Cast) > 0 {
		cast := d.Credits.Cast
		if len(cast) > 5 {
			cast = cast[:5]
		}
		names := make([]string, len(cast))
		for i, member := range cast {
			names[i] = member.Name
		}
		b.WriteString(fmt.Sprintf("Starring: %s\n", strings.Join(names, ", ")))
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	if trailer := BestTrailer(d.Videos.Results); trailer != nil {
		b.WriteString(styles.ok.Render(fmt.Sprintf("\n▶ %s", trailer.Name)))
		b.WriteString("\n")
		helpKeys = append([]key.Binding{m.keys.open}, helpKeys...)
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(helpKeys))

	return b.String()
}
