// Package repository implements the data access layer for users and posts.
package repository

import (
	"context"

	"postboard/internal/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create stores user and assigns its ID. A duplicate email yields a CONFLICT AppError.
	Create(ctx context.Context, user *models.User) error
	// GetByID returns a NOT_FOUND AppError when no user has id.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail returns (nil, nil) when no user has email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	// GetByID returns a NOT_FOUND AppError when no post has id.
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// List returns every post, oldest first.
	List(ctx context.Context) ([]*models.Post, error)
	// Update writes title, body and image of an existing post.
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}

const emailTakenMessage = "Email already registered"
