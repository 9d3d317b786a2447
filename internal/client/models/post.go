package models

import "time"

// PostType classifies a feed entry.
type PostType string

const (
	PostTypePost      PostType = "POST"
	PostTypeStory     PostType = "STORY"
	PostTypeTravelLog PostType = "TRAVEL_LOG"
	PostTypeEvent     PostType = "EVENT"
)

// Privacy controls who can see a post.
type Privacy string

const (
	PrivacyPublic          Privacy = "PUBLIC"
	PrivacyConnectionsOnly Privacy = "CONNECTIONS_ONLY"
	PrivacyPrivate         Privacy = "PRIVATE"
)

// StoryType classifies an ephemeral story.
type StoryType string

const (
	StoryTypeImage  StoryType = "IMAGE"
	StoryTypeVideo  StoryType = "VIDEO"
	StoryTypeText   StoryType = "TEXT"
	StoryTypeTravel StoryType = "TRAVEL"
)

type Post struct {
	ID            int64      `json:"id"`
	Content       string     `json:"content"`
	Type          PostType   `json:"type"`
	MediaURLs     []string   `json:"mediaUrls"`
	Location      string     `json:"location,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	Privacy       Privacy    `json:"privacy"`
	Hashtags      []string   `json:"hashtags"`
	ViewCount     int        `json:"viewCount"`
	ShareCount    int        `json:"shareCount"`
	IsEdited      bool       `json:"isEdited"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	Author        User       `json:"author"`
	LikesCount    int        `json:"likesCount"`
	CommentsCount int        `json:"commentsCount"`
	IsLiked       bool       `json:"isLiked"`
	TaggedUsers   []User     `json:"taggedUsers"`
}

type Story struct {
	ID           int64     `json:"id"`
	Type         StoryType `json:"type"`
	MediaURL     string    `json:"mediaUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Text         string    `json:"text,omitempty"`
	Location     string    `json:"location,omitempty"`
	Duration     int       `json:"duration"`
	ExpiresAt    time.Time `json:"expiresAt"`
	IsHighlight  bool      `json:"isHighlight"`
	ViewCount    int       `json:"viewCount"`
	CreatedAt    time.Time `json:"createdAt"`
	Author       User      `json:"author"`
	IsViewed     bool      `json:"isViewed"`
}

type Comment struct {
	ID        int64      `json:"id"`
	Content   string     `json:"content"`
	LikeCount int        `json:"likeCount"`
	IsEdited  bool       `json:"isEdited"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
	Author    User       `json:"author"`
	IsLiked   bool       `json:"isLiked"`
}

type CreatePostRequest struct {
	Content       string   `json:"content"`
	Type          PostType `json:"type"`
	MediaURLs     []string `json:"mediaUrls,omitempty"`
	Location      string   `json:"location,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Privacy       Privacy  `json:"privacy"`
	Hashtags      []string `json:"hashtags,omitempty"`
	TaggedUserIDs []int64  `json:"taggedUserIds,omitempty"`
}

type CreateStoryRequest struct {
	Type         StoryType `json:"type"`
	MediaURL     string    `json:"mediaUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Text         string    `json:"text,omitempty"`
	Location     string    `json:"location,omitempty"`
	Duration     int       `json:"duration,omitempty"`
	MentionIDs   []int64   `json:"mentionIds,omitempty"`
}
