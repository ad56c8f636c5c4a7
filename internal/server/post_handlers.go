package server

import (
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Image string `json:"image"`
}

// updatePostRequest uses pointers so absent fields can be told apart from empty ones.
type updatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
	Image *string `json:"image"`
}

// ListPosts handles GET /posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondError(c, err, "An error occurred while fetching posts")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"posts": posts})
}

// CreatePost handles POST /posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := parseBody(c, &req); err != nil {
		return respondInvalidBody(c)
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID: middleware.CurrentUserID(c),
		Title:  req.Title,
		Body:   req.Body,
		Image:  req.Image,
	})
	if err != nil {
		return respondError(c, err, "An error occurred while creating the post")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"post": post})
}

// UpdatePost handles PUT /posts/:postId
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	var req updatePostRequest
	if err := parseBody(c, &req); err != nil {
		return respondInvalidBody(c)
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		UserID: middleware.CurrentUserID(c),
		PostID: c.Params("postId"),
		Title:  req.Title,
		Body:   req.Body,
		Image:  req.Image,
	})
	if err != nil {
		return respondError(c, err, "An error occurred while updating the post")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"post": post})
}

// DeletePost handles DELETE /posts/:postId
func (s *Server) DeletePost(c *fiber.Ctx) error {
	err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		UserID: middleware.CurrentUserID(c),
		PostID: c.Params("postId"),
	})
	if err != nil {
		return respondError(c, err, "An error occurred while deleting the post")
	}

	return models.RespondWithMessage(c, "Post deleted successfully")
}
