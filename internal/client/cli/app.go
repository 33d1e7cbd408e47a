package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/asemenova/toolshare/internal/client/api"
	"github.com/asemenova/toolshare/internal/client/config"
	"github.com/asemenova/toolshare/internal/client/guard"
	"github.com/asemenova/toolshare/internal/client/models"
	"github.com/asemenova/toolshare/internal/client/repositories/localdata"
	"github.com/asemenova/toolshare/internal/client/session"
	"github.com/asemenova/toolshare/internal/logging"
)

// SessionService is the slice of the session store the shell drives.
// *session.Session satisfies it; tests provide a stub.
type SessionService interface {
	Login(ctx context.Context, creds api.Credentials) error
	Register(ctx context.Context, reg api.Registration) (*models.User, error)
	UpdateProfile(ctx context.Context, upd api.ProfileUpdate) error
	Logout(ctx context.Context)
	IsLoggedIn() bool
	IsAdmin() bool
	Points() int
	Profile() *models.User
	TokenExpired(now time.Time) bool
}

// Backend is the slice of the transport the view handlers call. The auth
// group is absent on purpose: authentication goes through SessionService so
// the credential lifecycle stays in one place.
type Backend interface {
	ListTools(ctx context.Context, q api.ToolQuery) ([]models.Tool, error)
	GetTool(ctx context.Context, id int64) (*models.Tool, error)
	PublishTool(ctx context.Context, req api.ToolRequest) (*models.Tool, error)
	UpdateTool(ctx context.Context, id int64, req api.ToolRequest) error
	DeleteTool(ctx context.Context, id int64) error
	MyTools(ctx context.Context) ([]models.Tool, error)

	ApplyBorrow(ctx context.Context, app api.BorrowApplication) (*models.BorrowRecord, error)
	MyBorrows(ctx context.Context) ([]models.BorrowRecord, error)
	ReceivedBorrows(ctx context.Context) ([]models.BorrowRecord, error)
	ApproveBorrow(ctx context.Context, id int64) error
	RejectBorrow(ctx context.Context, id int64) error
	PickupBorrow(ctx context.Context, id int64) error
	ReturnBorrow(ctx context.Context, id int64) error

	CreateReview(ctx context.Context, req api.ReviewRequest) (*models.Review, error)
	ToolReviews(ctx context.Context, toolID int64) ([]models.Review, error)
	MyReviews(ctx context.Context) ([]models.Review, error)

	PointsRanking(ctx context.Context) ([]models.User, error)
	MyPoints(ctx context.Context) ([]models.PointRecord, error)

	Notifications(ctx context.Context) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	MarkAllNotificationsRead(ctx context.Context) error

	PublicAnnouncements(ctx context.Context) ([]models.Announcement, error)

	Dashboard(ctx context.Context) (*models.DashboardStats, error)
	AdminUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, id int64, status int) error
	AdminTools(ctx context.Context) ([]models.Tool, error)
	AuditTool(ctx context.Context, id int64, req api.AuditRequest) error
	OfflineTool(ctx context.Context, id int64) error
	AdminAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, req api.AnnouncementRequest) (*models.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id int64, req api.AnnouncementRequest) error
	DeleteAnnouncement(ctx context.Context, id int64) error
}

// guardIface lets tests swap the route gate.
type guardIface interface {
	Evaluate(ctx context.Context, route guard.Route) guard.Decision
}

type App struct {
	config  *config.Config
	backend Backend
	session SessionService
	guard   guardIface
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
}

// NewApp wires transport, local storage, session, and guard together. The
// session object built here is the application's single identity context;
// it is handed to the guard and the transport rather than living in a
// package variable.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdata.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	store := localdata.NewSQLiteRepository(db)

	// The transport reads the credential through the session on every
	// call; the session is created right after, so the indirection below
	// closes the cycle without a mutable package global.
	var sess *session.Session
	client := api.New(
		cfg.ServerBaseURL,
		api.TokenFunc(func() string {
			if sess == nil {
				return ""
			}
			return sess.Token()
		}),
		api.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
		api.WithLogger(log),
	)

	sess, err = session.New(ctx, client, store, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  cfg,
		backend: client,
		session: sess,
		guard:   guard.New(sess, log),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}, nil
}

// Run starts the interactive shell and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to toolshare (type 'help' for commands)")
	if a.session.TokenExpired(time.Now()) {
		fmt.Fprintln(a.out, "Your saved session has expired; please log in again.")
		a.session.Logout(ctx)
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner, a.out)
}

// Close releases the local database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) getStatus() string {
	if !a.session.IsLoggedIn() {
		return ""
	}
	name := ""
	if p := a.session.Profile(); p != nil {
		name = p.Nickname
		if name == "" {
			name = p.Username
		}
		if p.IsAdmin() {
			name += " admin"
		}
	}
	if name == "" {
		return "(signed in)"
	}
	return fmt.Sprintf("(%s)", name)
}

func (a *App) isLoggedIn() bool { return a.session.IsLoggedIn() }
func (a *App) isAdmin() bool    { return a.session.IsAdmin() }

// Open navigates to a named view. The guard decides first: a login
// redirect runs the interactive login flow and then re-dispatches the
// original target, and an authorization bounce lands on the home view.
func (a *App) Open(ctx context.Context, name string, args []string) error {
	route, ok := guard.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown view: %s", name)
	}

	switch d := a.guard.Evaluate(ctx, route); d.Action {
	case guard.ActionRedirectLogin:
		fmt.Fprintln(a.out, "Please log in to continue.")
		if err := a.Login(ctx); err != nil {
			return err
		}
		if !a.session.IsLoggedIn() {
			return nil
		}
		// restore the originally intended view
		return a.Open(ctx, name, args)
	case guard.ActionRedirectHome:
		fmt.Fprintln(a.out, "Administrator access required.")
		return a.Open(ctx, guard.RouteHome, nil)
	}

	handler, ok := a.views()[name]
	if !ok {
		return fmt.Errorf("view %s has no handler", name)
	}
	if err := handler(ctx, args); err != nil {
		return a.reportError(ctx, err)
	}
	return nil
}

func (a *App) views() map[string]func(ctx context.Context, args []string) error {
	return map[string]func(ctx context.Context, args []string) error{
		guard.RouteHome:          a.homeView,
		guard.RouteTools:         a.toolsView,
		guard.RouteToolDetail:    a.toolDetailView,
		guard.RouteRankings:      a.rankingsView,
		guard.RouteLogin:         func(ctx context.Context, _ []string) error { return a.Login(ctx) },
		guard.RouteRegister:      func(ctx context.Context, _ []string) error { return a.Register(ctx) },
		guard.RoutePublish:       a.publishView,
		guard.RouteMyTools:       a.myToolsView,
		guard.RouteBorrows:       a.borrowsView,
		guard.RouteRequests:      a.requestsView,
		guard.RouteProfile:       a.profileView,
		guard.RouteNotifications: a.notificationsView,
		guard.RouteDashboard:     a.dashboardView,
		guard.RouteUsers:         a.usersView,
		guard.RouteAudit:         a.auditView,
		guard.RouteAnnouncements: a.announcementsView,
	}
}

// reportError translates handler failures for the user. A rejected
// credential is the one failure with a hard side effect: the session is
// dropped and the user lands back at the login prompt, mirroring the
// original client's forced redirect.
func (a *App) reportError(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrSessionExpired) {
		a.session.Logout(ctx)
		fmt.Fprintln(a.out, "Session expired, please log in again.")
		return a.Login(ctx)
	}
	if apiErr := api.AsError(err); apiErr != nil {
		fmt.Fprintln(a.out, "Server:", apiErr.Message)
		return nil
	}
	fmt.Fprintln(a.out, "Request failed:", err)
	return nil
}
