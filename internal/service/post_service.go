package service

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type PostService struct {
	posts repository.PostRepository
	users repository.UserRepository
}

type CreatePostInput struct {
	UserID string
	Title  string
	Body   string
	Image  string
}

// UpdatePostInput carries the fields to overwrite; nil fields keep their stored value.
type UpdatePostInput struct {
	UserID string
	PostID string
	Title  *string
	Body   *string
	Image  *string
}

type DeletePostInput struct {
	UserID string
	PostID string
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository) *PostService {
	return &PostService{
		posts: posts,
		users: users,
	}
}

// ListPosts returns every post with its owner resolved to a display name. Each owner
// is looked up once; an owner whose record no longer exists is reported as nil.
func (s *PostService) ListPosts(ctx context.Context) ([]models.PostWithOwner, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*models.Owner)
	result := make([]models.PostWithOwner, 0, len(posts))
	for _, p := range posts {
		owner, seen := owners[p.UserID]
		if !seen {
			owner, err = s.lookupOwner(ctx, p.UserID)
			if err != nil {
				return nil, err
			}
			owners[p.UserID] = owner
		}
		result = append(result, p.WithOwner(owner))
	}
	return result, nil
}

func (s *PostService) lookupOwner(ctx context.Context, userID string) (*models.Owner, error) {
	user, err := s.users.GetByID(ctx, userID)
	if models.IsCode(err, models.CodeNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user.AsOwner(), nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Title:  in.Title,
		Body:   in.Body,
		Image:  in.Image,
		UserID: in.UserID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.ownedPost(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Body != nil {
		post.Body = *in.Body
	}
	if in.Image != nil {
		post.Image = *in.Image
	}

	if err := s.posts.Update(ctx, post); err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	if _, err := s.ownedPost(ctx, in.PostID, in.UserID); err != nil {
		return err
	}
	if err := s.posts.Delete(ctx, in.PostID); err != nil {
		if models.IsCode(err, models.CodeNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}

// ownedPost loads postID and checks that userID owns it.
func (s *PostService) ownedPost(ctx context.Context, postID, userID string) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if models.IsCode(err, models.CodeNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if !post.OwnedBy(userID) {
		return nil, ErrForbidden
	}
	return post, nil
}
