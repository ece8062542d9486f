package seed

import (
	"testing"

	"schedcast/internal/auth"
	"schedcast/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:seedtest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Run(Options{
		NumUsers:     5,
		PostsPerUser: 2,
		ShouldClean:  true,
	}))

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 6, userCount) // 5 users + 1 admin

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.EqualValues(t, 12, postCount)

	// The admin account exists with a working password
	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@schedcast.dev").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, auth.CheckPassword(DefaultPassword, admin.Password))

	// Every post targets a known platform and belongs to a seeded user
	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	for _, post := range posts {
		assert.True(t, post.Platform.Valid(), "platform %q", post.Platform)
		assert.NotZero(t, post.UserID)
	}

	// Re-running with clean resets the data instead of duplicating it
	require.NoError(t, s.Run(Options{NumUsers: 1, PostsPerUser: 1, ShouldClean: true}))
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 2, userCount)
}
