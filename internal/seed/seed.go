// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"schedcast/internal/auth"
	"schedcast/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	PostsPerUser int
	ShouldClean  bool
}

// DefaultPassword is the plaintext password assigned to every seeded account.
const DefaultPassword = "password123"

// Seeder populates the database with demo users and scheduled posts.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Posts go first to satisfy the foreign key.
func (s *Seeder) ClearAll() error {
	log.Println("Cleaning database...")
	if err := s.db.Exec("DELETE FROM posts").Error; err != nil {
		return fmt.Errorf("clear posts: %w", err)
	}
	if err := s.db.Exec("DELETE FROM users").Error; err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}

// Run seeds the configured number of users and posts. The first user created
// is an admin (admin@schedcast.dev); every account shares DefaultPassword.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	hashed, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	admin := &models.User{
		Name:     "Schedcast Admin",
		Email:    "admin@schedcast.dev",
		Password: hashed,
		Role:     models.RoleAdmin,
	}
	if err := s.db.Create(admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	users := []*models.User{admin}
	for i := 0; i < opts.NumUsers; i++ {
		user := &models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("%s%d@%s", strings.ToLower(gofakeit.Username()), i, gofakeit.DomainName()),
			Password: hashed,
			Role:     models.RoleUser,
		}
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Created %d users (1 admin)", len(users))

	platforms := models.Platforms()
	total := 0
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post := s.buildPost(user, platforms)
			if err := s.db.Create(post).Error; err != nil {
				return fmt.Errorf("create post for user %d: %w", user.ID, err)
			}
			total++
		}
	}
	log.Printf("Created %d scheduled posts", total)

	return nil
}

// buildPost constructs a post with a scheduled time spread over the next two
// weeks. Posts already past their slot are marked published.
func (s *Seeder) buildPost(user *models.User, platforms []models.Platform) *models.Post {
	platform := platforms[s.rand.Intn(len(platforms))]

	// scheduled anywhere from 3 days ago to 11 days out
	offset := time.Duration(s.rand.Intn(14*24)-3*24) * time.Hour
	scheduledAt := time.Now().Add(offset)

	post := &models.Post{
		Title:       gofakeit.Sentence(4),
		Content:     gofakeit.Paragraph(1, 2, 8, " "),
		Platform:    platform,
		ScheduledAt: scheduledAt,
		IsPublished: scheduledAt.Before(time.Now()),
		UserID:      user.ID,
	}
	if s.rand.Intn(3) == 0 {
		post.MediaURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}
	return post
}
