// Package guard gates every view transition against the target route's
// declared access level. It consults the session, lazily resolving the
// profile when a protected route needs it, and produces a verdict the shell
// acts on. Verdicts are never cached: every transition is evaluated afresh.
package guard

import (
	"context"

	"github.com/asemenova/toolshare/internal/logging"
)

// Access is the closed set of access levels a route can declare. Admin-only
// implies authenticated, so the nonsensical "admin but anonymous"
// combination cannot be expressed.
type Access int

const (
	AccessPublic Access = iota
	AccessAuthenticated
	AccessAdminOnly
)

// Route is a navigable view and its access requirement.
type Route struct {
	Name   string
	Path   string
	Access Access
}

// Action is the guard's verdict for one transition.
type Action int

const (
	// ActionAllow lets the transition proceed.
	ActionAllow Action = iota
	// ActionRedirectLogin sends the user to the login view; Decision.ReturnTo
	// holds the originally intended path so it can be restored afterwards.
	ActionRedirectLogin
	// ActionRedirectHome bounces an authenticated but unauthorized user home.
	ActionRedirectHome
)

// Decision is the outcome of evaluating one transition.
type Decision struct {
	Action   Action
	ReturnTo string
}

// SessionState is the slice of the session the guard reads.
type SessionState interface {
	IsLoggedIn() bool
	HasProfile() bool
	IsAdmin() bool
	FetchProfile(ctx context.Context) error
}

type Guard struct {
	session SessionState
	log     logging.Logger
}

func New(session SessionState, log logging.Logger) *Guard {
	return &Guard{session: session, log: log.With("component", "guard")}
}

// Evaluate runs the transition checks in order: public routes pass
// untouched; anonymous users are sent to login with the target recorded;
// an unresolved profile is fetched before any role check (the one place
// navigation blocks on network I/O; a failed fetch has already logged the
// session out, so the verdict degrades to a login redirect); finally,
// admin-only routes bounce non-admins home.
func (g *Guard) Evaluate(ctx context.Context, route Route) Decision {
	if route.Access == AccessPublic {
		return Decision{Action: ActionAllow}
	}

	if !g.session.IsLoggedIn() {
		g.log.Debug(ctx, "anonymous navigation to protected route", "route", route.Name)
		return Decision{Action: ActionRedirectLogin, ReturnTo: route.Path}
	}

	if !g.session.HasProfile() {
		if err := g.session.FetchProfile(ctx); err != nil || !g.session.IsLoggedIn() {
			g.log.Info(ctx, "profile resolution failed during navigation", "route", route.Name, "error", err)
			return Decision{Action: ActionRedirectLogin, ReturnTo: route.Path}
		}
	}

	if route.Access == AccessAdminOnly && !g.session.IsAdmin() {
		g.log.Debug(ctx, "non-admin navigation to admin route", "route", route.Name)
		return Decision{Action: ActionRedirectHome}
	}

	return Decision{Action: ActionAllow}
}
