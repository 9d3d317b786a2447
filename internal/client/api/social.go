package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/terrabond/terrabond-cli/internal/client/models"
)

// SocialClient wraps the social service under /api/social: posts, comments,
// stories, hashtags and the aggregated feed.
type SocialClient struct {
	c *Client
}

func NewSocialClient(c *Client) *SocialClient {
	return &SocialClient{c: c}
}

func (s *SocialClient) Feed(ctx context.Context, page, size int) ([]models.Post, error) {
	return get[[]models.Post](ctx, s.c, "/feed", pageQuery(page, size), "Could not load feed")
}

func (s *SocialClient) UserPosts(ctx context.Context, userID int64, page int) ([]models.Post, error) {
	return get[[]models.Post](ctx, s.c, fmt.Sprintf("/users/%d/posts", userID), pageQuery(page, 0), "Could not load posts")
}

func (s *SocialClient) Post(ctx context.Context, postID int64) (models.Post, error) {
	return get[models.Post](ctx, s.c, fmt.Sprintf("/posts/%d", postID), nil, "Could not load post")
}

func (s *SocialClient) CreatePost(ctx context.Context, req models.CreatePostRequest) (models.Post, error) {
	return post[models.Post](ctx, s.c, "/posts", req, "Could not create post")
}

func (s *SocialClient) DeletePost(ctx context.Context, postID int64) error {
	_, err := del[struct{}](ctx, s.c, fmt.Sprintf("/posts/%d", postID), "Could not delete post")
	return err
}

func (s *SocialClient) LikePost(ctx context.Context, postID int64) error {
	_, err := post[struct{}](ctx, s.c, fmt.Sprintf("/posts/%d/like", postID), struct{}{}, "Could not like post")
	return err
}

func (s *SocialClient) UnlikePost(ctx context.Context, postID int64) error {
	_, err := del[struct{}](ctx, s.c, fmt.Sprintf("/posts/%d/like", postID), "Could not unlike post")
	return err
}

func (s *SocialClient) Comments(ctx context.Context, postID int64, page int) ([]models.Comment, error) {
	return get[[]models.Comment](ctx, s.c, fmt.Sprintf("/posts/%d/comments", postID), pageQuery(page, 0), "Could not load comments")
}

func (s *SocialClient) AddComment(ctx context.Context, postID int64, content string) (models.Comment, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}
	return post[models.Comment](ctx, s.c, fmt.Sprintf("/posts/%d/comments", postID), body, "Could not add comment")
}

func (s *SocialClient) Stories(ctx context.Context) ([]models.Story, error) {
	return get[[]models.Story](ctx, s.c, "/stories", nil, "Could not load stories")
}

func (s *SocialClient) CreateStory(ctx context.Context, req models.CreateStoryRequest) (models.Story, error) {
	return post[models.Story](ctx, s.c, "/stories", req, "Could not create story")
}

func (s *SocialClient) ViewStory(ctx context.Context, storyID int64) error {
	_, err := post[struct{}](ctx, s.c, fmt.Sprintf("/stories/%d/view", storyID), struct{}{}, "Could not mark story viewed")
	return err
}

func (s *SocialClient) TrendingHashtags(ctx context.Context) ([]string, error) {
	return get[[]string](ctx, s.c, "/hashtags/trending", nil, "Could not load hashtags")
}

func (s *SocialClient) HashtagPosts(ctx context.Context, hashtag string, page int) ([]models.Post, error) {
	return get[[]models.Post](ctx, s.c, "/hashtags/"+url.PathEscape(hashtag)+"/posts", pageQuery(page, 0), "Could not load posts")
}

func (s *SocialClient) Explore(ctx context.Context, page int) ([]models.Post, error) {
	return get[[]models.Post](ctx, s.c, "/explore", pageQuery(page, 0), "Could not load explore page")
}
