package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terrabond/terrabond-cli/internal/client/api"
	"github.com/terrabond/terrabond-cli/internal/client/models"
	"github.com/terrabond/terrabond-cli/internal/common"
	"github.com/terrabond/terrabond-cli/internal/timex"
)

// printErr translates a service error into a terminal message. Display
// strings from the envelope are shown as-is; everything else gets a generic
// line so raw transport errors never reach the user.
func printErr(err error) {
	var apiErr *api.Error
	switch {
	case errors.As(err, &apiErr):
		printlnFn(apiErr.Message)
	case errors.Is(err, common.ErrorUnauthorized):
		printlnFn("Session expired, please log in again.")
	case errors.Is(err, api.ErrUnavailable):
		printlnFn("Service unavailable, try again later.")
	default:
		printlnFn("Error:", err.Error())
	}
}

func displayName(u models.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return fmt.Sprintf("%s (@%s)", name, u.Username)
}

func renderPost(p models.Post) {
	header := fmt.Sprintf("#%d  %s  %s", p.ID, displayName(p.Author), timex.RelativeNow(p.CreatedAt))
	if p.Location != "" {
		header += "  @ " + p.Location
	}
	printlnFn(header)
	printlnFn("  " + strings.ReplaceAll(p.Content, "\n", "\n  "))
	if len(p.Hashtags) > 0 {
		printlnFn("  #" + strings.Join(p.Hashtags, " #"))
	}
	liked := ""
	if p.IsLiked {
		liked = " (liked)"
	}
	printlnFn(fmt.Sprintf("  likes: %d%s  comments: %d", p.LikesCount, liked, p.CommentsCount))
}

func renderStory(s models.Story) {
	printlnFn(fmt.Sprintf("#%d  %s  %s  [%s]", s.ID, displayName(s.Author), timex.RelativeNow(s.CreatedAt), s.Type))
	if s.Text != "" {
		printlnFn("  " + s.Text)
	}
}

func renderComment(c models.Comment) {
	printlnFn(fmt.Sprintf("  %s  %s", displayName(c.Author), timex.RelativeNow(c.CreatedAt)))
	printlnFn("    " + c.Content)
}

func renderUser(u models.User) {
	line := fmt.Sprintf("#%d  %s", u.ID, displayName(u))
	if loc := strings.Trim(u.City+", "+u.Country, ", "); loc != "" {
		line += "  " + loc
	}
	printlnFn(line)
}
