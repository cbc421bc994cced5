// Package services implements the client side of the movie catalog API.
//
// Two layers live here:
//
// [APIService] is the raw HTTP client bound to a fixed base URL. Before
// every request it reads the current username through a [SessionReader] and,
// when one exists, attaches it as the X-Username header. That header is the
// entire authentication mechanism; the stored token is never transmitted.
// The client applies a configurable timeout and a polite request rate limit,
// and tags each request with an X-Request-ID for log correlation. HTTP and
// network failures pass through raw.
//
// [MovieService] implements [Catalog] on top of APIService: typed request
// functions for details, search, genres, by-genre pages and the homepage
// sample. All failures are normalized into exactly three kinds:
//
//  1. A recognized HTTP failure whose body carries a detail message — the
//     error message is that detail, verbatim.
//  2. Any other transport or HTTP failure — "failed to fetch data from API".
//  3. An unexpected payload shape — "an unknown error occurred".
//
// The service layer logs every failure and re-throws it; it never retries
// and never recovers. Retry is a caller affordance (a manual action in the
// UI).
package services
