// Package guard contains the route access predicates consulted before a
// navigation completes. Each guard reads one session snapshot (the most
// recently published value, logged-out by default before the session
// manager has initialized) and resolves synchronously: either the
// navigation is allowed, or the user is silently redirected.
package guard

import (
	"strings"

	"github.com/terrabond/terrabond-cli/internal/client/models"
	"github.com/terrabond/terrabond-cli/internal/client/services"
)

// Application routes. The admin section has child routes; AdminRequired
// covers all of them.
const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteFeed     = "/feed"
	RouteExplore  = "/explore"
	RouteProfile  = "/profile"
	RouteMatching = "/matching"
	RouteMessages = "/messages"
	RouteSettings = "/settings"
	RouteAdmin    = "/admin"
)

// Decision is the outcome of a guard check. When Allowed is false,
// RedirectTo names the route the navigation is diverted to.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(route string) Decision {
	return Decision{RedirectTo: route}
}

// AuthRequired allows the navigation iff a session exists; anonymous users
// are sent to the login page. Applies to authenticated-only pages and their
// nested routes.
func AuthRequired(snap services.Snapshot) Decision {
	if snap.Authenticated {
		return allow()
	}
	return redirect(RouteLogin)
}

// AdminRequired allows the navigation only for authenticated users carrying
// the ADMIN role. Anonymous users are sent to login; authenticated
// non-admins are silently redirected to the feed, there is no
// access-denied page.
func AdminRequired(snap services.Snapshot) Decision {
	if !snap.Authenticated {
		return redirect(RouteLogin)
	}
	if snap.User.HasRole(models.RoleAdmin) {
		return allow()
	}
	return redirect(RouteFeed)
}

// PublicOnly allows the navigation iff no session exists. Already
// authenticated users landing on login or registration are sent to the
// feed.
func PublicOnly(snap services.Snapshot) Decision {
	if !snap.Authenticated {
		return allow()
	}
	return redirect(RouteFeed)
}

// Resolve picks the guard governing a route and evaluates it. Admin child
// routes inherit AdminRequired; login and registration are public-only;
// everything else requires a session.
func Resolve(route string, snap services.Snapshot) Decision {
	switch {
	case route == RouteAdmin || strings.HasPrefix(route, RouteAdmin+"/"):
		return AdminRequired(snap)
	case route == RouteLogin || route == RouteRegister:
		return PublicOnly(snap)
	default:
		return AuthRequired(snap)
	}
}
