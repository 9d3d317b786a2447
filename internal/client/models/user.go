// Package models defines the data shapes exchanged with the TerraBond
// backend services and the client-side projections cached in the session.
package models

import (
	"slices"
	"time"
)

// Role is a role tag assigned to a user account.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Gender values accepted by the registration endpoint.
type Gender string

const (
	GenderMale         Gender = "MALE"
	GenderFemale       Gender = "FEMALE"
	GenderOther        Gender = "OTHER"
	GenderNotDisclosed Gender = "PREFER_NOT_TO_SAY"
)

// User is the client-side projection of a user account. After a login or
// registration only the fields carried by the JWT response are populated;
// travel styles, languages and interests stay empty until a full profile
// fetch enriches them.
type User struct {
	ID               int64      `json:"id"`
	Email            string     `json:"email"`
	Username         string     `json:"username"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Phone            string     `json:"phone,omitempty"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty"`
	Gender           Gender     `json:"gender,omitempty"`
	Nationality      string     `json:"nationality,omitempty"`
	City             string     `json:"city,omitempty"`
	Country          string     `json:"country,omitempty"`
	Bio              string     `json:"bio,omitempty"`
	Profession       string     `json:"profession,omitempty"`
	ProfilePicture   string     `json:"profilePicture,omitempty"`
	CoverPicture     string     `json:"coverPicture,omitempty"`
	FaceVerified     bool       `json:"faceVerified"`
	Roles            []Role     `json:"roles"`
	IsVerified       bool       `json:"isVerified"`
	IsActive         bool       `json:"isActive"`
	TwoFactorEnabled bool       `json:"twoFactorEnabled"`
	TravelStyles     []string   `json:"travelStyles"`
	Languages        []string   `json:"languages"`
	Interests        []string   `json:"interests"`
	PersonalityType  string     `json:"personalityType,omitempty"`
	DreamCountries   string     `json:"dreamCountries,omitempty"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// HasRole reports whether the user carries the given role tag.
func (u *User) HasRole(role Role) bool {
	return u != nil && slices.Contains(u.Roles, role)
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email              string `json:"email"`
	Password           string `json:"password"`
	TwoFactorCode      string `json:"twoFactorCode,omitempty"`
	UseFaceRecognition bool   `json:"useFaceRecognition,omitempty"`
	FaceData           string `json:"faceData,omitempty"`
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Username         string `json:"username"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           Gender `json:"gender"`
	FaceEncodingData string `json:"faceEncodingData,omitempty"`
}

// JwtResponse is the data field of a successful login or registration
// envelope.
type JwtResponse struct {
	Token            string `json:"token"`
	Type             string `json:"type"`
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	Username         string `json:"username"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Roles            []Role `json:"roles"`
	FaceVerified     bool   `json:"faceVerified"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// NewSessionUser derives the minimal cached user projection from a JWT
// response. Preference slices are initialized empty rather than nil so the
// stored JSON round-trips the same shape a profile fetch would produce.
func NewSessionUser(r JwtResponse) User {
	return User{
		ID:               r.ID,
		Email:            r.Email,
		Username:         r.Username,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Roles:            append([]Role(nil), r.Roles...),
		FaceVerified:     r.FaceVerified,
		TwoFactorEnabled: r.TwoFactorEnabled,
		IsActive:         true,
		TravelStyles:     []string{},
		Languages:        []string{},
		Interests:        []string{},
		CreatedAt:        time.Now(),
	}
}

// UserProfile is the enriched profile returned by GET /api/users/{id}.
type UserProfile struct {
	User             User `json:"user"`
	PostsCount       int  `json:"postsCount"`
	FollowersCount   int  `json:"followersCount"`
	FollowingCount   int  `json:"followingCount"`
	ConnectionsCount int  `json:"connectionsCount"`
	IsFollowing      bool `json:"isFollowing"`
	IsConnected      bool `json:"isConnected"`
}

// TravelPreferences is the payload of PATCH /api/users/{id}/preferences.
type TravelPreferences struct {
	TravelStyles   []string `json:"travelStyles,omitempty"`
	Languages      []string `json:"languages,omitempty"`
	Interests      []string `json:"interests,omitempty"`
	DreamCountries string   `json:"dreamCountries,omitempty"`
}
