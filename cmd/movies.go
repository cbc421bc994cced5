package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/mvx/internal/formatter"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/sourcegraph/conc"
	"github.com/urfave/cli/v3"
)

// MovieDetails fetches and prints the full record for one movie.
func (r *Runner) MovieDetails(ctx context.Context, cmd *cli.Command) error {
	movieID, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: movie id must be numeric", shared.ErrInvalidInput)
	}

	r.logger.Debugf("fetching details for movie %d", movieID)

	details, err := r.catalog.MovieDetails(ctx, movieID)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(path, formatter.ExportDetailsToText(details)); err != nil {
			return err
		}
		return r.writePlain("✓ Exported to %s\n", path)
	}

	if cmd.Bool("json") {
		return r.writeJSON(details, cmd.Bool("pretty"))
	}

	return r.writePlain("%s", formatter.ExportDetailsToText(details))
}

// MovieSearch searches the catalog and prints one page of results. The
// shareable query-string form of the effective search is printed alongside.
func (r *Runner) MovieSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	genreIDs, err := parseGenreIDs(cmd.String("genres"))
	if err != nil {
		return err
	}

	page := int(cmd.Int("page"))
	year := cmd.String("year")

	result, err := r.catalog.SearchMovies(ctx, query, page, year, genreIDs)
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		return r.exportMovies(path, fmt.Sprintf("Search: %s", query), result.Results)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, cmd.Bool("pretty"))
	}

	state := models.SearchQuery{Text: query, Page: page, Year: year, GenreIDs: genreIDs}
	r.writePlainHeader(fmt.Sprintf("Results for %q", query))
	r.printMovieList(result.Results)
	r.writePlainln("Page %d of %d (%d results)", result.Page, result.TotalPages, result.TotalResults)
	r.writePlain("Share: ?%s\n", state.Encode())

	return nil
}

// MovieGenres lists the genre catalog.
func (r *Runner) MovieGenres(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.catalog.Genres(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, true)
	}

	r.writePlainHeader("Genres")
	for _, genre := range genres.Genres {
		r.writePlain("%5d  %s\n", genre.ID, genre.Name)
	}

	return nil
}

// MoviesByGenre lists one page of movies for a genre. The display name and
// the movie page come from two independent endpoints, fetched concurrently;
// a name-resolution failure is cosmetic and does not fail the command.
func (r *Runner) MoviesByGenre(ctx context.Context, cmd *cli.Command) error {
	genreID, err := strconv.Atoi(cmd.StringArg("id"))
	if err != nil {
		return fmt.Errorf("%w: genre id must be numeric", shared.ErrInvalidInput)
	}

	page := int(cmd.Int("page"))

	var (
		result    *models.MoviePage
		pageErr   error
		genreName string
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		result, pageErr = r.catalog.MoviesByGenre(ctx, genreID, page)
	})
	wg.Go(func() {
		catalog, err := r.catalog.Genres(ctx)
		if err != nil {
			r.logger.Warnf("failed to resolve genre name: %v", err)
			return
		}
		for _, genre := range catalog.Genres {
			if genre.ID == genreID {
				genreName = genre.Name
				return
			}
		}
	})
	wg.Wait()

	if pageErr != nil {
		return pageErr
	}

	if genreName == "" {
		genreName = fmt.Sprintf("Genre %d", genreID)
	}

	if path := cmd.String("output"); path != "" {
		return r.exportMovies(path, genreName, result.Results)
	}

	if cmd.Bool("json") {
		return r.writeJSON(result, true)
	}

	r.writePlainHeader(fmt.Sprintf("%s Movies", genreName))
	r.printMovieList(result.Results)
	r.writePlainln("Page %d of %d (%d results)", result.Page, result.TotalPages, result.TotalResults)

	return nil
}

// MoviesHome prints the landing-page sample: a bounded number of movies per
// genre.
func (r *Runner) MoviesHome(ctx context.Context, cmd *cli.Command) error {
	all, err := r.catalog.AllGenresWithMovies(ctx, int(cmd.Int("limit")))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(all, true)
	}

	for _, genre := range all.Genres {
		r.writePlainHeader(genre.Name)
		r.printMovieList(genre.Movies)
	}

	return nil
}

func (r *Runner) printMovieList(movies []models.Movie) {
	for _, movie := range movies {
		year := shared.ReleaseYear(movie.ReleaseDate)
		if year != "" {
			year = " (" + year + ")"
		}
		r.writePlain("%8d  %s%s — %s\n", movie.ID, movie.Title, year, shared.FormatRating(movie.VoteAverage))
	}
}

func (r *Runner) exportMovies(path, title string, movies []models.Movie) error {
	var data []byte
	var err error

	switch {
	case strings.HasSuffix(path, ".csv"):
		data, err = formatter.ExportToCSV(movies)
		if err != nil {
			return err
		}
	case strings.HasSuffix(path, ".md"):
		data = formatter.ExportToMarkdown(title, movies)
	default:
		return fmt.Errorf("%w: output must end in .csv or .md", shared.ErrInvalidFlag)
	}

	if err := formatter.WriteExport(path, data); err != nil {
		return err
	}

	return r.writePlain("✓ Exported %d movies to %s\n", len(movies), path)
}

func parseGenreIDs(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []int
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: genre ids must be numeric, got %q", shared.ErrInvalidFlag, part)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
