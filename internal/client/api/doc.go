// Package api is the single choke point for every call to the marketplace
// backend. It attaches the bearer credential, unwraps the uniform
// {code, message, data} envelope, and maps failures onto a small taxonomy:
//
//   - ErrSessionExpired: the server answered HTTP 401; the credential is no
//     longer valid. The transport performs no navigation and no storage
//     mutation itself; the shell owns the recovery sequence.
//   - *Error: the server answered with an envelope whose code is not 200
//     (application-level failure, possibly on a 2xx transport status).
//   - anything else: network-level failure, returned wrapped so callers can
//     handle it generically.
//
// Endpoint methods are grouped by backend controller: auth, tools, borrows,
// reviews, points, notifications, announcements, admin.
package api
