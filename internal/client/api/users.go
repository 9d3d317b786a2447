package api

import (
	"context"
	"fmt"

	"github.com/terrabond/terrabond-cli/internal/client/models"
)

// UserClient wraps the user service under /api/users: profiles, search,
// suggestions and the follow graph.
type UserClient struct {
	c *Client
}

func NewUserClient(c *Client) *UserClient {
	return &UserClient{c: c}
}

// Me fetches the enriched profile of the authenticated user.
func (u *UserClient) Me(ctx context.Context) (models.UserProfile, error) {
	return get[models.UserProfile](ctx, u.c, "/me", nil, "Could not load profile")
}

func (u *UserClient) Profile(ctx context.Context, userID int64) (models.UserProfile, error) {
	return get[models.UserProfile](ctx, u.c, fmt.Sprintf("/%d", userID), nil, "Could not load profile")
}

func (u *UserClient) UpdateProfile(ctx context.Context, userID int64, user models.User) (models.User, error) {
	return put[models.User](ctx, u.c, fmt.Sprintf("/%d", userID), user, "Could not update profile")
}

func (u *UserClient) Search(ctx context.Context, query string, page, size int) ([]models.User, error) {
	q := pageQuery(page, size)
	q.Set("query", query)
	return get[[]models.User](ctx, u.c, "/search", q, "Search failed")
}

func (u *UserClient) Suggestions(ctx context.Context) ([]models.User, error) {
	return get[[]models.User](ctx, u.c, "/suggestions", nil, "Could not load suggestions")
}

func (u *UserClient) Follow(ctx context.Context, userID int64) error {
	_, err := post[struct{}](ctx, u.c, fmt.Sprintf("/%d/follow", userID), struct{}{}, "Could not follow user")
	return err
}

func (u *UserClient) Unfollow(ctx context.Context, userID int64) error {
	_, err := del[struct{}](ctx, u.c, fmt.Sprintf("/%d/follow", userID), "Could not unfollow user")
	return err
}

func (u *UserClient) Followers(ctx context.Context, userID int64, page int) ([]models.User, error) {
	return get[[]models.User](ctx, u.c, fmt.Sprintf("/%d/followers", userID), pageQuery(page, 0), "Could not load followers")
}

func (u *UserClient) Following(ctx context.Context, userID int64, page int) ([]models.User, error) {
	return get[[]models.User](ctx, u.c, fmt.Sprintf("/%d/following", userID), pageQuery(page, 0), "Could not load following")
}

func (u *UserClient) UpdateTravelPreferences(ctx context.Context, userID int64, prefs models.TravelPreferences) (models.User, error) {
	return patch[models.User](ctx, u.c, fmt.Sprintf("/%d/preferences", userID), prefs, "Could not update preferences")
}
