package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/terrabond/terrabond-cli/internal/client/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	visit(route string) bool
	statusLine() string

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	TwoFactor(ctx context.Context, enable bool) error
	RegisterFace(ctx context.Context) error

	Feed(ctx context.Context, page int) error
	Explore(ctx context.Context, page int) error
	Stories(ctx context.Context) error
	CreatePost(ctx context.Context) error
	CreateStory(ctx context.Context) error
	Like(ctx context.Context, postID int64) error
	Unlike(ctx context.Context, postID int64) error
	Comments(ctx context.Context, postID int64) error
	AddComment(ctx context.Context, postID int64) error
	Trending(ctx context.Context) error
	Hashtag(ctx context.Context, tag string) error

	Profile(ctx context.Context, userID int64) error
	EditProfile(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error
	Followers(ctx context.Context) error
	Following(ctx context.Context) error
	Suggestions(ctx context.Context) error
	Preferences(ctx context.Context) error

	Admin(ctx context.Context, args []string) error
}

// commandRoute maps each command to the route whose guard must admit it.
// Commands absent from the map (help, exit) are always available.
var commandRoute = map[string]string{
	"login":       guard.RouteLogin,
	"register":    guard.RouteRegister,
	"feed":        guard.RouteFeed,
	"stories":     guard.RouteFeed,
	"post":        guard.RouteFeed,
	"story":       guard.RouteFeed,
	"like":        guard.RouteFeed,
	"unlike":      guard.RouteFeed,
	"comments":    guard.RouteFeed,
	"comment":     guard.RouteFeed,
	"explore":     guard.RouteExplore,
	"search":      guard.RouteExplore,
	"trending":    guard.RouteExplore,
	"hashtag":     guard.RouteExplore,
	"whoami":      guard.RouteProfile,
	"profile":     guard.RouteProfile,
	"follow":      guard.RouteProfile,
	"unfollow":    guard.RouteProfile,
	"followers":   guard.RouteProfile,
	"following":   guard.RouteProfile,
	"suggestions": guard.RouteMatching,
	"edit":        guard.RouteSettings,
	"prefs":       guard.RouteSettings,
	"2fa":         guard.RouteSettings,
	"face":        guard.RouteSettings,
	"logout":      guard.RouteSettings,
	"admin":       guard.RouteAdmin,
}

// runREPL starts a read-eval-print loop for the TerraBond CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, checks the command's route guard, and dispatches to methods on
// 'a'. Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tb %s > ", a.statusLine()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printHelp(a.isLoggedIn())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if route, ok := commandRoute[cmd]; ok {
			if !a.visit(route) {
				continue
			}
		}

		switch cmd {
		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "2fa":
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				printlnFn("Usage: 2fa on|off")
				continue
			}
			_ = a.TwoFactor(ctx, args[0] == "on")

		case "face":
			_ = a.RegisterFace(ctx)

		case "feed":
			_ = a.Feed(ctx, pageArg(args))

		case "explore":
			_ = a.Explore(ctx, pageArg(args))

		case "stories":
			_ = a.Stories(ctx)

		case "post":
			_ = a.CreatePost(ctx)

		case "story":
			_ = a.CreateStory(ctx)

		case "like", "unlike", "comments", "comment":
			id, err := idArg(args)
			if err != nil {
				printlnFn(fmt.Sprintf("Usage: %s <post-id>", cmd))
				continue
			}
			switch cmd {
			case "like":
				_ = a.Like(ctx, id)
			case "unlike":
				_ = a.Unlike(ctx, id)
			case "comments":
				_ = a.Comments(ctx, id)
			case "comment":
				_ = a.AddComment(ctx, id)
			}

		case "trending":
			_ = a.Trending(ctx)

		case "hashtag":
			if len(args) != 1 {
				printlnFn("Usage: hashtag <tag>")
				continue
			}
			_ = a.Hashtag(ctx, strings.TrimPrefix(args[0], "#"))

		case "profile":
			var id int64
			if len(args) > 0 {
				var err error
				if id, err = idArg(args); err != nil {
					printlnFn("Usage: profile [user-id]")
					continue
				}
			}
			_ = a.Profile(ctx, id)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <query>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "follow", "unfollow":
			id, err := idArg(args)
			if err != nil {
				printlnFn(fmt.Sprintf("Usage: %s <user-id>", cmd))
				continue
			}
			if cmd == "follow" {
				_ = a.Follow(ctx, id)
			} else {
				_ = a.Unfollow(ctx, id)
			}

		case "followers":
			_ = a.Followers(ctx)

		case "following":
			_ = a.Following(ctx)

		case "suggestions":
			_ = a.Suggestions(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "prefs":
			_ = a.Preferences(ctx)

		case "admin":
			_ = a.Admin(ctx, args)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(loggedIn bool) {
	if !loggedIn {
		printlnFn("Available commands: login, register, help, exit")
		return
	}
	printlnFn("Session:  whoami, 2fa on|off, face, logout")
	printlnFn("Feed:     feed [page], stories, post, story, like <id>, unlike <id>, comments <id>, comment <id>")
	printlnFn("Explore:  explore [page], search <query>, trending, hashtag <tag>")
	printlnFn("People:   profile [id], edit, follow <id>, unfollow <id>, followers, following, suggestions, prefs")
	printlnFn("Admin:    admin users <id> | admin rmpost <id>")
	printlnFn("Other:    help, exit")
}

// pageArg parses an optional 1-based page number, defaulting to 0 (first page).
func pageArg(args []string) int {
	if len(args) == 0 {
		return 0
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0
	}
	return n - 1
}

func idArg(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one id argument")
	}
	return strconv.ParseInt(args[0], 10, 64)
}
