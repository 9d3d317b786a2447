package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/terrabond/terrabond-cli/internal/client/models"
)

// Profile prints a user profile with its counters. userID 0 means the
// current user's own profile.
func (a *App) Profile(ctx context.Context, userID int64) error {
	var (
		profile models.UserProfile
		err     error
	)
	if userID == 0 {
		profile, err = a.users.Me(ctx)
	} else {
		profile, err = a.users.Profile(ctx, userID)
	}
	if err != nil {
		printErr(err)
		return err
	}

	u := profile.User
	renderUser(u)
	if u.Bio != "" {
		printlnFn("  " + u.Bio)
	}
	if u.Profession != "" {
		printlnFn("  " + u.Profession)
	}
	printlnFn(fmt.Sprintf("  posts: %d  followers: %d  following: %d  connections: %d",
		profile.PostsCount, profile.FollowersCount, profile.FollowingCount, profile.ConnectionsCount))
	if len(u.TravelStyles) > 0 {
		printlnFn("  travel styles:", strings.Join(u.TravelStyles, ", "))
	}
	if len(u.Languages) > 0 {
		printlnFn("  languages:", strings.Join(u.Languages, ", "))
	}
	if len(u.Interests) > 0 {
		printlnFn("  interests:", strings.Join(u.Interests, ", "))
	}
	if profile.IsFollowing {
		printlnFn("  you follow this user")
	}

	posts, err := a.social.UserPosts(ctx, u.ID, 0)
	if err != nil {
		printErr(err)
		return err
	}
	if len(posts) > 0 {
		printlnFn()
		printlnFn("Recent posts:")
		for _, p := range posts {
			renderPost(p)
			printlnFn()
		}
	}
	return nil
}

// EditProfile prompts for the editable profile fields (empty answer keeps
// the current value), saves them through the user service and refreshes the
// cached session user with the server's response.
func (a *App) EditProfile(ctx context.Context) error {
	current := a.auth.CurrentUser()
	if current == nil {
		printlnFn("Not logged in.")
		return nil
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Bio", &current.Bio},
		{"City", &current.City},
		{"Country", &current.Country},
		{"Profession", &current.Profession},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", f.prompt, *f.dst), os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	updated, err := a.users.UpdateProfile(ctx, current.ID, *current)
	if err != nil {
		printErr(err)
		return err
	}

	if err := a.auth.UpdateStoredUser(ctx, updated); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// Search looks up users matching the query and prints the first page.
func (a *App) Search(ctx context.Context, query string) error {
	found, err := a.users.Search(ctx, query, 0, defaultPageSize)
	if err != nil {
		printErr(err)
		return err
	}
	if len(found) == 0 {
		printlnFn("No users found.")
		return nil
	}
	for _, u := range found {
		renderUser(u)
	}
	return nil
}

func (a *App) Follow(ctx context.Context, userID int64) error {
	if err := a.users.Follow(ctx, userID); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Followed.")
	return nil
}

func (a *App) Unfollow(ctx context.Context, userID int64) error {
	if err := a.users.Unfollow(ctx, userID); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Unfollowed.")
	return nil
}

// Followers prints the first page of the current user's followers.
func (a *App) Followers(ctx context.Context) error {
	return a.listRelations(ctx, "followers")
}

// Following prints the first page of users the current user follows.
func (a *App) Following(ctx context.Context) error {
	return a.listRelations(ctx, "following")
}

func (a *App) listRelations(ctx context.Context, kind string) error {
	u := a.auth.CurrentUser()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	var (
		list []models.User
		err  error
	)
	if kind == "followers" {
		list, err = a.users.Followers(ctx, u.ID, 0)
	} else {
		list, err = a.users.Following(ctx, u.ID, 0)
	}
	if err != nil {
		printErr(err)
		return err
	}
	if len(list) == 0 {
		printlnFn("Nobody here yet.")
		return nil
	}
	for _, v := range list {
		renderUser(v)
	}
	return nil
}

// Suggestions prints travel-companion suggestions for the current user.
func (a *App) Suggestions(ctx context.Context) error {
	suggested, err := a.users.Suggestions(ctx)
	if err != nil {
		printErr(err)
		return err
	}
	if len(suggested) == 0 {
		printlnFn("No suggestions right now.")
		return nil
	}
	for _, u := range suggested {
		renderUser(u)
	}
	return nil
}

// Preferences prompts for the travel-preference lists, sends the update and
// refreshes the cached session user with the server's response.
func (a *App) Preferences(ctx context.Context) error {
	current := a.auth.CurrentUser()
	if current == nil {
		printlnFn("Not logged in.")
		return nil
	}

	styles, err := getList(a.reader, "Travel styles", os.Stdout)
	if err != nil {
		return err
	}
	languages, err := getList(a.reader, "Languages", os.Stdout)
	if err != nil {
		return err
	}
	interests, err := getList(a.reader, "Interests", os.Stdout)
	if err != nil {
		return err
	}
	dream, err := getSimpleText(a.reader, "Dream countries", os.Stdout)
	if err != nil {
		return err
	}

	prefs := models.TravelPreferences{
		TravelStyles:   styles,
		Languages:      languages,
		Interests:      interests,
		DreamCountries: dream,
	}
	updated, err := a.users.UpdateTravelPreferences(ctx, current.ID, prefs)
	if err != nil {
		printErr(err)
		return err
	}

	if err := a.auth.UpdateStoredUser(ctx, updated); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Preferences updated.")
	return nil
}
