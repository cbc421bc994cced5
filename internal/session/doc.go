// Package session holds the client's pseudo-identity state.
//
// [Store] is a SQLite-backed key-value store filling the role browser
// localStorage fills for a single-page app: three keys (token, user,
// username) that survive restarts and are cleared on logout.
// All three are written in one transaction, so the invariant "username
// present implies user present" holds even across failed writes.
//
// [Auth] is the mock authentication facade behind the [Authenticator]
// capability interface. It is explicitly a placeholder: passwords are
// ignored, the token is a constant, and nothing is verified remotely.
package session
