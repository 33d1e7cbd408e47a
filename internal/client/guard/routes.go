package guard

// Route names, used by the shell to address views.
const (
	RouteHome          = "home"
	RouteTools         = "tools"
	RouteToolDetail    = "tool-detail"
	RouteRankings      = "rankings"
	RouteLogin         = "login"
	RouteRegister      = "register"
	RoutePublish       = "publish"
	RouteMyTools       = "my-tools"
	RouteBorrows       = "borrows"
	RouteRequests      = "borrow-requests"
	RouteProfile       = "profile"
	RouteNotifications = "notifications"
	RouteDashboard     = "admin-dashboard"
	RouteUsers         = "admin-users"
	RouteAudit         = "admin-tools"
	RouteAnnouncements = "admin-announcements"
)

// Routes is the full navigable surface. Public routes are browsable
// anonymously; the rest require a session, and the admin group additionally
// requires the admin role.
var Routes = []Route{
	{Name: RouteHome, Path: "/home", Access: AccessPublic},
	{Name: RouteTools, Path: "/tools", Access: AccessPublic},
	{Name: RouteToolDetail, Path: "/tools/:id", Access: AccessPublic},
	{Name: RouteRankings, Path: "/rankings", Access: AccessPublic},
	{Name: RouteLogin, Path: "/login", Access: AccessPublic},
	{Name: RouteRegister, Path: "/register", Access: AccessPublic},

	{Name: RoutePublish, Path: "/publish", Access: AccessAuthenticated},
	{Name: RouteMyTools, Path: "/my-tools", Access: AccessAuthenticated},
	{Name: RouteBorrows, Path: "/borrows", Access: AccessAuthenticated},
	{Name: RouteRequests, Path: "/borrow-requests", Access: AccessAuthenticated},
	{Name: RouteProfile, Path: "/profile", Access: AccessAuthenticated},
	{Name: RouteNotifications, Path: "/notifications", Access: AccessAuthenticated},

	{Name: RouteDashboard, Path: "/admin/dashboard", Access: AccessAdminOnly},
	{Name: RouteUsers, Path: "/admin/users", Access: AccessAdminOnly},
	{Name: RouteAudit, Path: "/admin/tools", Access: AccessAdminOnly},
	{Name: RouteAnnouncements, Path: "/admin/announcements", Access: AccessAdminOnly},
}

// Lookup finds a route by name.
func Lookup(name string) (Route, bool) {
	for _, r := range Routes {
		if r.Name == name {
			return r, true
		}
	}
	return Route{}, false
}
