// Package service contains business logic between handlers and repositories.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"schedcast/internal/models"
	"schedcast/internal/repository"
)

const (
	titleMinLength   = 3
	titleMaxLength   = 100
	contentMaxLength = 2000
)

// Caller identifies the authenticated user performing an operation.
type Caller struct {
	UserID uint
	Role   models.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == models.RoleAdmin
}

// CreatePostInput carries the fields accepted when scheduling a new post.
type CreatePostInput struct {
	UserID      uint
	Title       string
	Content     string
	Platform    string
	ScheduledAt string
	MediaURL    string
}

// UpdatePostInput carries the fields accepted when editing a post. Title,
// content, and platform are required on every update; media is optional.
type UpdatePostInput struct {
	PostID   uint
	Caller   Caller
	Title    string
	Content  string
	Platform string
	MediaURL string
}

// PostService manages scheduled posts and enforces ownership.
type PostService struct {
	postRepo repository.PostRepository
}

// NewPostService creates a new post service.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Create validates the input and schedules a new post for the caller.
func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	platform := strings.TrimSpace(input.Platform)

	if title == "" || content == "" || platform == "" {
		return nil, models.NewValidationError("Title, content, and platform are required")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validatePlatform(platform); err != nil {
		return nil, err
	}

	scheduledAt, err := parseScheduledAt(input.ScheduledAt)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:       title,
		Content:     content,
		Platform:    models.Platform(platform),
		ScheduledAt: scheduledAt,
		IsPublished: false,
		MediaURL:    strings.TrimSpace(input.MediaURL),
		UserID:      input.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListMine returns the caller's posts, newest first. An empty result is a
// non-nil slice so it serializes as [] rather than null.
func (s *PostService) ListMine(ctx context.Context, caller Caller) ([]models.Post, error) {
	posts, err := s.postRepo.ListByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// Get returns a single post if the caller owns it or is an admin.
func (s *PostService) Get(ctx context.Context, caller Caller, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, models.NewForbiddenError("You can only view your own posts.")
	}
	return post, nil
}

// Update edits a post's fields if the caller owns it or is an admin.
func (s *PostService) Update(ctx context.Context, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != input.Caller.UserID && !input.Caller.IsAdmin() {
		return nil, models.NewForbiddenError("You can only update your own posts.")
	}

	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	platform := strings.TrimSpace(input.Platform)

	// Updates carry the full post body, same rules as Create
	if title == "" || content == "" || platform == "" {
		return nil, models.NewValidationError("Title, content, and platform are required")
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validatePlatform(platform); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	post.Platform = models.Platform(platform)
	if media := strings.TrimSpace(input.MediaURL); media != "" {
		post.MediaURL = media
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post if the caller owns it or is an admin.
func (s *PostService) Delete(ctx context.Context, caller Caller, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != caller.UserID && !caller.IsAdmin() {
		return models.NewForbiddenError("Not authorized to delete this post.")
	}
	return s.postRepo.Delete(ctx, postID)
}

func validateTitle(title string) error {
	if len(title) < titleMinLength || len(title) > titleMaxLength {
		return models.NewValidationError(
			fmt.Sprintf("Title must be between %d and %d characters", titleMinLength, titleMaxLength))
	}
	return nil
}

func validateContent(content string) error {
	if len(content) > contentMaxLength {
		return models.NewValidationError(
			fmt.Sprintf("Content must not exceed %d characters", contentMaxLength))
	}
	return nil
}

func validatePlatform(platform string) error {
	if !models.Platform(platform).Valid() {
		return models.NewValidationError(
			fmt.Sprintf("Invalid platform %q. Allowed platforms: %s", platform, models.PlatformList()))
	}
	return nil
}

// parseScheduledAt interprets an optional RFC 3339 timestamp, defaulting to
// now when absent.
func parseScheduledAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, models.NewValidationError("Invalid scheduled date/time.")
	}
	return t, nil
}
