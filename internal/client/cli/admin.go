package cli

import (
	"context"
	"strconv"
)

// Admin dispatches the moderation subcommands. The REPL has already run the
// admin guard before this is reached; each subcommand still visits its own
// child route so nested navigation stays guarded.
func (a *App) Admin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: admin users <id> | admin rmpost <id>")
		return nil
	}

	switch args[0] {
	case "users":
		if !a.visit("/admin/users") {
			return nil
		}
		if len(args) != 2 {
			printlnFn("Usage: admin users <id>")
			return nil
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			printlnFn("Usage: admin users <id>")
			return nil
		}
		return a.Profile(ctx, id)

	case "rmpost":
		if !a.visit("/admin/posts") {
			return nil
		}
		if len(args) != 2 {
			printlnFn("Usage: admin rmpost <id>")
			return nil
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			printlnFn("Usage: admin rmpost <id>")
			return nil
		}
		if err := a.social.DeletePost(ctx, id); err != nil {
			printErr(err)
			return err
		}
		printlnFn("Post removed.")
		return nil

	default:
		printlnFn("Unknown admin subcommand:", args[0])
		return nil
	}
}
