// package models defines the data model for the movie browsing client
package models

import "encoding/json"

// Movie is a movie summary as returned by the catalog list endpoints.
// Sourced verbatim from the remote API per request; never mutated locally.
type Movie struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	PosterPath   *string `json:"poster_path"`
	BackdropPath *string `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// HasGenre reports whether the movie carries any of the given genre ids.
func (m Movie) HasGenre(genreIDs []int) bool {
	for _, want := range genreIDs {
		for _, got := range m.GenreIDs {
			if got == want {
				return true
			}
		}
	}
	return false
}

// MoviePage is the paginated response shape shared by the search and
// by-genre endpoints.
type MoviePage struct {
	Results      []Movie `json:"results"`
	TotalResults int     `json:"total_results"`
	TotalPages   int     `json:"total_pages"`
	Page         int     `json:"page"`
}

// Genre is an id/name pair from the genre catalog.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreWithMovies carries a bounded sample of movies for homepage display.
type GenreWithMovies struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Movies []Movie `json:"movies"`
}

// GenreList is the response shape of the genre catalog endpoint.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// AllGenres is the response shape of the all-genres homepage endpoint.
type AllGenres struct {
	Genres []GenreWithMovies `json:"genres"`
}

// CastMember is an actor credit on a movie.
type CastMember struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	ProfilePath *string `json:"profile_path"`
}

// CrewMember is a production credit on a movie.
type CrewMember struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits groups the cast and crew of a movie.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Video is a clip attached to a movie (trailers, teasers, featurettes).
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// VideoList wraps the videos sub-resource of a movie.
type VideoList struct {
	Results []Video `json:"results"`
}

// MovieDetails is the full record for a single movie, a superset of [Movie]
// with runtime, resolved genres, credits and videos appended.
type MovieDetails struct {
	Movie
	Runtime int       `json:"runtime"`
	Genres  []Genre   `json:"genres"`
	Credits Credits   `json:"credits"`
	Videos  VideoList `json:"videos"`
}

// UserRecord is the locally synthesized identity. It is never validated
// against a server and is only ever replaced wholesale, never patched.
type UserRecord struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Marshal serializes the record for session storage.
func (u UserRecord) Marshal() ([]byte, error) {
	return json.Marshal(u)
}

// UnmarshalUser deserializes a stored [UserRecord].
func UnmarshalUser(data []byte) (UserRecord, error) {
	var u UserRecord
	err := json.Unmarshal(data, &u)
	return u, err
}

// Session is the client-held record of the current pseudo-identity and its
// placeholder credential.
type Session struct {
	Username string
	Token    string
	User     UserRecord
}
