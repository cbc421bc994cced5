// Package models defines domain entities shared across the mvx client.
//
// The package contains two categories of types:
//
// 1. Catalog shapes: structs mirroring the remote movie API's JSON responses
//   - [Movie] : Summary record used by list endpoints
//   - [MovieDetails] : Full record with runtime, credits and videos
//   - [Genre], [GenreWithMovies] : Genre catalog entries
//   - [MoviePage] : Shared pagination envelope
//
// 2. Identity shapes: the client-only mock authentication state
//   - [UserRecord] : Locally synthesized user, never server-validated
//   - [Session] : Username, placeholder token and user record
//
// Catalog types are immutable snapshots of a single response; nothing in the
// client caches or mutates them across requests.
package models
