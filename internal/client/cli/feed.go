package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/terrabond/terrabond-cli/internal/client/models"
)

const defaultPageSize = 10

// Feed prints one page of the personalized feed.
func (a *App) Feed(ctx context.Context, page int) error {
	posts, err := a.social.Feed(ctx, page, defaultPageSize)
	if err != nil {
		printErr(err)
		return err
	}
	if len(posts) == 0 {
		printlnFn("Nothing to show.")
		return nil
	}
	for _, p := range posts {
		renderPost(p)
		printlnFn()
	}
	return nil
}

// Explore prints one page of public posts outside the user's network.
func (a *App) Explore(ctx context.Context, page int) error {
	posts, err := a.social.Explore(ctx, page)
	if err != nil {
		printErr(err)
		return err
	}
	if len(posts) == 0 {
		printlnFn("Nothing to show.")
		return nil
	}
	for _, p := range posts {
		renderPost(p)
		printlnFn()
	}
	return nil
}

// Stories lists the active stories of followed users.
func (a *App) Stories(ctx context.Context) error {
	stories, err := a.social.Stories(ctx)
	if err != nil {
		printErr(err)
		return err
	}
	if len(stories) == 0 {
		printlnFn("No active stories.")
		return nil
	}
	for _, s := range stories {
		renderStory(s)
		if !s.IsViewed {
			if err := a.social.ViewStory(ctx, s.ID); err != nil {
				a.log.Warn(ctx, "marking story viewed", "story_id", s.ID, "error", err)
			}
		}
	}
	return nil
}

// CreatePost prompts for a post body, location and privacy and publishes it.
// Hashtags are extracted from '#' tokens in the content, the way the
// composer does it.
func (a *App) CreatePost(ctx context.Context) error {
	content, err := getMultiline(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Post content cannot be empty.")
		return nil
	}

	location, err := getSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return err
	}

	privacy, err := getSimpleText(a.reader, "Privacy (PUBLIC/CONNECTIONS_ONLY/PRIVATE, default PUBLIC)", os.Stdout)
	if err != nil {
		return err
	}
	if privacy == "" {
		privacy = string(models.PrivacyPublic)
	}

	req := models.CreatePostRequest{
		Content:  content,
		Type:     models.PostTypePost,
		Location: location,
		Privacy:  models.Privacy(privacy),
		Hashtags: extractHashtags(content),
	}
	post, err := a.social.CreatePost(ctx, req)
	if err != nil {
		printErr(err)
		return err
	}

	printlnFn(fmt.Sprintf("Posted (#%d).", post.ID))
	return nil
}

// CreateStory prompts for a 24h story.
func (a *App) CreateStory(ctx context.Context) error {
	text, err := getSimpleText(a.reader, "Story text", os.Stdout)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (optional)", os.Stdout)
	if err != nil {
		return err
	}

	req := models.CreateStoryRequest{
		Type:     models.StoryTypeText,
		Text:     text,
		Location: location,
	}
	story, err := a.social.CreateStory(ctx, req)
	if err != nil {
		printErr(err)
		return err
	}

	printlnFn(fmt.Sprintf("Story published (#%d), expires %s.", story.ID, story.ExpiresAt.Format("02/01/2006 15:04")))
	return nil
}

func (a *App) Like(ctx context.Context, postID int64) error {
	if err := a.social.LikePost(ctx, postID); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Liked.")
	return nil
}

func (a *App) Unlike(ctx context.Context, postID int64) error {
	if err := a.social.UnlikePost(ctx, postID); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Unliked.")
	return nil
}

// Comments prints the post followed by its first page of comments.
func (a *App) Comments(ctx context.Context, postID int64) error {
	post, err := a.social.Post(ctx, postID)
	if err != nil {
		printErr(err)
		return err
	}
	renderPost(post)

	comments, err := a.social.Comments(ctx, postID, 0)
	if err != nil {
		printErr(err)
		return err
	}
	for _, c := range comments {
		renderComment(c)
	}
	return nil
}

// AddComment prompts for a comment body and attaches it to the post.
func (a *App) AddComment(ctx context.Context, postID int64) error {
	content, err := getSimpleText(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}
	if content == "" {
		printlnFn("Comment cannot be empty.")
		return nil
	}

	if _, err := a.social.AddComment(ctx, postID, content); err != nil {
		printErr(err)
		return err
	}
	printlnFn("Comment added.")
	return nil
}

// Trending prints the currently trending hashtags.
func (a *App) Trending(ctx context.Context) error {
	tags, err := a.social.TrendingHashtags(ctx)
	if err != nil {
		printErr(err)
		return err
	}
	if len(tags) == 0 {
		printlnFn("No trending hashtags.")
		return nil
	}
	for _, tag := range tags {
		printlnFn("#" + tag)
	}
	return nil
}

// Hashtag prints the first page of posts carrying the given tag.
func (a *App) Hashtag(ctx context.Context, tag string) error {
	posts, err := a.social.HashtagPosts(ctx, tag, 0)
	if err != nil {
		printErr(err)
		return err
	}
	if len(posts) == 0 {
		printlnFn("No posts for #" + tag + ".")
		return nil
	}
	for _, p := range posts {
		renderPost(p)
		printlnFn()
	}
	return nil
}

// extractHashtags collects the distinct '#' tokens of a post body, without
// the leading marker.
func extractHashtags(content string) []string {
	var tags []string
	seen := map[string]bool{}
	for _, word := range strings.Fields(content) {
		if !strings.HasPrefix(word, "#") || len(word) < 2 {
			continue
		}
		tag := strings.Trim(word[1:], ".,!?;:")
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
