package server

import (
	"schedcast/internal/models"
	"schedcast/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyPosts handles GET /api/posts
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListMine(c.Context(), s.caller(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Platform    string `json:"platform"`
		ScheduledAt string `json:"scheduled_at"`
		MediaURL    string `json:"media_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), service.CreatePostInput{
		UserID:      s.caller(c).UserID,
		Title:       req.Title,
		Content:     req.Content,
		Platform:    req.Platform,
		ScheduledAt: req.ScheduledAt,
		MediaURL:    req.MediaURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"post": post})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}
	post, err := s.postService.Get(c.Context(), s.caller(c), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Platform string `json:"platform"`
		MediaURL string `json:"media_url"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), service.UpdatePostInput{
		PostID:   id,
		Caller:   s.caller(c),
		Title:    req.Title,
		Content:  req.Content,
		Platform: req.Platform,
		MediaURL: req.MediaURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}
	if delErr := s.postService.Delete(c.Context(), s.caller(c), id); delErr != nil {
		return models.RespondWithAppError(c, delErr)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully."})
}
