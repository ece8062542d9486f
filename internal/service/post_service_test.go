package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"schedcast/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPostRepo implements repository.PostRepository with per-test funcs.
type stubPostRepo struct {
	createFn func(ctx context.Context, post *models.Post) error
	getFn    func(ctx context.Context, id uint) (*models.Post, error)
	listFn   func(ctx context.Context, userID uint) ([]models.Post, error)
	updateFn func(ctx context.Context, post *models.Post) error
	deleteFn func(ctx context.Context, id uint) error
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	post.ID = 1
	return nil
}

func (s *stubPostRepo) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, models.NewNotFoundError("Post", id)
}

func (s *stubPostRepo) ListByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubPostRepo) Update(ctx context.Context, post *models.Post) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, post)
	}
	return nil
}

func (s *stubPostRepo) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func TestPostService_Create_Validation(t *testing.T) {
	svc := NewPostService(&stubPostRepo{})
	ctx := context.Background()

	base := CreatePostInput{
		UserID:   1,
		Title:    "Launch teaser",
		Content:  "We are going live next week",
		Platform: "facebook",
	}

	tests := []struct {
		name    string
		mutate  func(*CreatePostInput)
		wantErr string
	}{
		{
			name:    "missing title",
			mutate:  func(in *CreatePostInput) { in.Title = "  " },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "missing content",
			mutate:  func(in *CreatePostInput) { in.Content = "" },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "missing platform",
			mutate:  func(in *CreatePostInput) { in.Platform = "" },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "title too short",
			mutate:  func(in *CreatePostInput) { in.Title = "Hi" },
			wantErr: "Title must be between 3 and 100 characters",
		},
		{
			name:    "title too long",
			mutate:  func(in *CreatePostInput) { in.Title = strings.Repeat("t", 101) },
			wantErr: "Title must be between 3 and 100 characters",
		},
		{
			name:    "content too long",
			mutate:  func(in *CreatePostInput) { in.Content = strings.Repeat("c", 2001) },
			wantErr: "Content must not exceed 2000 characters",
		},
		{
			name:    "unknown platform",
			mutate:  func(in *CreatePostInput) { in.Platform = "myspace" },
			wantErr: `Invalid platform "myspace". Allowed platforms: facebook, instagram, youtube, tiktok`,
		},
		{
			name:    "invalid scheduled time",
			mutate:  func(in *CreatePostInput) { in.ScheduledAt = "next tuesday" },
			wantErr: "Invalid scheduled date/time.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)

			_, err := svc.Create(ctx, input)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestPostService_Create_Defaults(t *testing.T) {
	var created *models.Post
	repo := &stubPostRepo{
		createFn: func(ctx context.Context, post *models.Post) error {
			post.ID = 10
			created = post
			return nil
		},
	}
	svc := NewPostService(repo)

	before := time.Now()
	post, err := svc.Create(context.Background(), CreatePostInput{
		UserID:   5,
		Title:    "  Launch teaser  ",
		Content:  " We are going live ",
		Platform: "instagram",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uint(10), post.ID)
	assert.Equal(t, uint(5), post.UserID)
	assert.Equal(t, "Launch teaser", post.Title)
	assert.Equal(t, "We are going live", post.Content)
	assert.Equal(t, models.PlatformInstagram, post.Platform)
	assert.False(t, post.IsPublished)
	// scheduled_at defaults to now when omitted
	assert.WithinDuration(t, before, post.ScheduledAt, 5*time.Second)
}

func TestPostService_Create_ExplicitSchedule(t *testing.T) {
	svc := NewPostService(&stubPostRepo{})

	when := time.Date(2026, 9, 15, 10, 30, 0, 0, time.UTC)
	post, err := svc.Create(context.Background(), CreatePostInput{
		UserID:      5,
		Title:       "Scheduled",
		Content:     "content",
		Platform:    "youtube",
		ScheduledAt: when.Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.True(t, when.Equal(post.ScheduledAt))
}

func TestPostService_ListMine_EmptyIsNotNil(t *testing.T) {
	svc := NewPostService(&stubPostRepo{})

	posts, err := svc.ListMine(context.Background(), Caller{UserID: 1})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostService_Ownership(t *testing.T) {
	owned := func(ctx context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id, Title: "Mine", Content: "content", Platform: models.PlatformFacebook, UserID: 1}, nil
	}

	owner := Caller{UserID: 1, Role: models.RoleUser}
	stranger := Caller{UserID: 2, Role: models.RoleUser}
	admin := Caller{UserID: 3, Role: models.RoleAdmin}

	t.Run("get", func(t *testing.T) {
		svc := NewPostService(&stubPostRepo{getFn: owned})

		_, err := svc.Get(context.Background(), owner, 1)
		assert.NoError(t, err)

		_, err = svc.Get(context.Background(), stranger, 1)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)

		_, err = svc.Get(context.Background(), admin, 1)
		assert.NoError(t, err)
	})

	t.Run("update", func(t *testing.T) {
		svc := NewPostService(&stubPostRepo{getFn: owned})

		_, err := svc.Update(context.Background(), UpdatePostInput{
			PostID: 1, Caller: stranger,
			Title: "Hacked", Content: "content", Platform: "facebook",
		})
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
		assert.Equal(t, "You can only update your own posts.", appErr.Message)

		post, err := svc.Update(context.Background(), UpdatePostInput{
			PostID: 1, Caller: admin,
			Title: "Moderated", Content: "content", Platform: "facebook",
		})
		require.NoError(t, err)
		assert.Equal(t, "Moderated", post.Title)
	})

	t.Run("delete", func(t *testing.T) {
		svc := NewPostService(&stubPostRepo{getFn: owned})

		err := svc.Delete(context.Background(), stranger, 1)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeForbidden, appErr.Code)
		assert.Equal(t, "Not authorized to delete this post.", appErr.Message)

		assert.NoError(t, svc.Delete(context.Background(), owner, 1))
		assert.NoError(t, svc.Delete(context.Background(), admin, 1))
	})
}

func TestPostService_Update_RequiredFields(t *testing.T) {
	existing := &models.Post{
		ID:       1,
		Title:    "Original title",
		Content:  "Original content",
		Platform: models.PlatformFacebook,
		UserID:   1,
	}
	svc := NewPostService(&stubPostRepo{
		getFn: func(ctx context.Context, id uint) (*models.Post, error) {
			cp := *existing
			return &cp, nil
		},
	})
	owner := Caller{UserID: 1, Role: models.RoleUser}

	base := UpdatePostInput{
		PostID:   1,
		Caller:   owner,
		Title:    "New title",
		Content:  "New content",
		Platform: "instagram",
	}

	// Updates carry the full body; omitting any required field is rejected
	tests := []struct {
		name    string
		mutate  func(*UpdatePostInput)
		wantErr string
	}{
		{
			name:    "empty body",
			mutate:  func(in *UpdatePostInput) { in.Title, in.Content, in.Platform = "", "", "" },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "missing title",
			mutate:  func(in *UpdatePostInput) { in.Title = "  " },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "missing content",
			mutate:  func(in *UpdatePostInput) { in.Content = "" },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "missing platform",
			mutate:  func(in *UpdatePostInput) { in.Platform = "" },
			wantErr: "Title, content, and platform are required",
		},
		{
			name:    "title too short",
			mutate:  func(in *UpdatePostInput) { in.Title = "Hi" },
			wantErr: "Title must be between 3 and 100 characters",
		},
		{
			name:    "unknown platform",
			mutate:  func(in *UpdatePostInput) { in.Platform = "friendster" },
			wantErr: `Invalid platform "friendster". Allowed platforms: facebook, instagram, youtube, tiktok`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := base
			tt.mutate(&input)

			_, err := svc.Update(context.Background(), input)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}

	// A full body replaces every required field
	post, err := svc.Update(context.Background(), base)
	require.NoError(t, err)
	assert.Equal(t, "New title", post.Title)
	assert.Equal(t, "New content", post.Content)
	assert.Equal(t, models.PlatformInstagram, post.Platform)
}

func TestPostService_Get_NotFound(t *testing.T) {
	svc := NewPostService(&stubPostRepo{})

	_, err := svc.Get(context.Background(), Caller{UserID: 1}, 99)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}
