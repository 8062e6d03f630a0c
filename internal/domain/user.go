package domain

import (
	"context"
	"time"
)

// Role is fixed at account creation.
type Role string

const (
	RoleJobSeeker Role = "job_seeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleRecruiter, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	Skills         []string  `json:"skills"`
	IsVerified     bool      `json:"is_verified"`
	PortfolioLinks []string  `json:"portfolio_links"`
	Bio            string    `json:"bio"`
	ImageURL       string    `json:"image_url"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserSummary is the nested read shape used inside jobs and applications.
type UserSummary struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}

// UserResponse is the read shape of a User.
type UserResponse struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	Role           Role      `json:"role"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	PortfolioLinks []string  `json:"portfolio_links"`
	ImageURL       string    `json:"image_url"`
	IsVerified     bool      `json:"is_verified"`
	CreatedAt      time.Time `json:"created_at"`
}

// RegisterInput is the public sign-up shape. Role defaults to job_seeker;
// admin accounts cannot be self-registered.
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	FullName string `json:"full_name" binding:"required,max=255,valid_name"`
	Role     Role   `json:"role" binding:"omitempty,oneof=job_seeker recruiter"`
}

// ProfileInput is the write shape for self-service profile edits.
// Role and IsVerified are deliberately absent.
type ProfileInput struct {
	FullName       *string  `json:"full_name" binding:"omitempty,min=1,max=255,valid_name"`
	Bio            *string  `json:"bio" binding:"omitempty,max=2000"`
	Skills         []string `json:"skills" binding:"omitempty,max=100,dive,skill"`
	PortfolioLinks []string `json:"portfolio_links" binding:"omitempty,max=20,dive,url"`
	ImageURL       *string  `json:"image_url" binding:"omitempty,url"`
}

type UserFilter struct {
	Role       *Role
	IsVerified *bool
}

func NewUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FullName:       u.FullName,
		Role:           u.Role,
		Bio:            u.Bio,
		Skills:         nonNil(u.Skills),
		PortfolioLinks: nonNil(u.PortfolioLinks),
		ImageURL:       u.ImageURL,
		IsVerified:     u.IsVerified,
		CreatedAt:      u.CreatedAt,
	}
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

// Apply copies the set fields of in onto u.
func (in ProfileInput) Apply(u *User) {
	if in.FullName != nil {
		u.FullName = *in.FullName
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Skills != nil {
		u.Skills = NormalizeSkills(in.Skills)
	}
	if in.PortfolioLinks != nil {
		u.PortfolioLinks = in.PortfolioLinks
	}
	if in.ImageURL != nil {
		u.ImageURL = *in.ImageURL
	}
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	UpdateProfile(ctx context.Context, user *User) error
	SetVerified(ctx context.Context, id int64, verified bool) error
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	Register(ctx context.Context, in RegisterInput) (*User, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
	UpdateProfile(ctx context.Context, actor *User, in ProfileInput) (*User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]User, error)
	VerifyRecruiter(ctx context.Context, actor *User, recruiterID int64) (*User, error)
	DeleteUser(ctx context.Context, actor *User, userID int64) (*User, error)
}
