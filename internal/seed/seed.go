// Package seed creates demo users and posts through the same services the API uses.
// It is intended for development only.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// DefaultPassword is the password given to every seeded user.
const DefaultPassword = "password123"

// Options configuration for the seeder
type Options struct {
	NumUsers int
	NumPosts int
	Password string
	// Seed makes the generated data reproducible; 0 picks a random seed.
	Seed int64
}

// Result lists what a run created.
type Result struct {
	Users []*models.User
	Posts []*models.Post
}

// Seeder registers users and writes posts on their behalf.
type Seeder struct {
	auth  *service.AuthService
	posts *service.PostService
}

func NewSeeder(auth *service.AuthService, posts *service.PostService) *Seeder {
	return &Seeder{auth: auth, posts: posts}
}

// Run creates opts.NumUsers users and spreads opts.NumPosts posts across them.
func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.NumPosts > 0 && opts.NumUsers <= 0 {
		return nil, fmt.Errorf("cannot seed %d posts without users", opts.NumPosts)
	}
	password := opts.Password
	if password == "" {
		password = DefaultPassword
	}

	faker := gofakeit.New(opts.Seed)
	result := &Result{}

	for i := 0; i < opts.NumUsers; i++ {
		user, err := s.auth.Register(ctx, service.RegisterInput{
			Name:     faker.Name(),
			Email:    strings.ToLower(fmt.Sprintf("%s.%d@example.com", faker.Username(), i)),
			Password: password,
		})
		if err != nil {
			return result, fmt.Errorf("seed user %d: %w", i, err)
		}
		result.Users = append(result.Users, user)
	}

	for i := 0; i < opts.NumPosts; i++ {
		owner := result.Users[faker.Number(0, len(result.Users)-1)]
		post, err := s.posts.CreatePost(ctx, service.CreatePostInput{
			UserID: owner.ID,
			Title:  faker.Sentence(5),
			Body:   faker.Paragraph(1, 3, 12, "\n"),
			Image:  fmt.Sprintf("https://picsum.photos/seed/%s/800/600", faker.UUID()),
		})
		if err != nil {
			return result, fmt.Errorf("seed post %d: %w", i, err)
		}
		result.Posts = append(result.Posts, post)
	}

	middleware.Logger.InfoContext(ctx, "Seeding complete",
		slog.Int("users", len(result.Users)),
		slog.Int("posts", len(result.Posts)),
	)
	return result, nil
}
