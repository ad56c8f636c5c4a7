package service

import (
	"context"

	"postboard/internal/models"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, string) (*models.Post, error)
	listFn    func(context.Context) ([]*models.Post, error)
	updateFn  func(context.Context, *models.Post) error
	deleteFn  func(context.Context, string) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]*models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, id string) (*models.Post, error) { return nil, models.NewNotFoundError("Post", id) },
		listFn:    func(_ context.Context) ([]*models.Post, error) { return []*models.Post{}, nil },
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ string) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn     func(context.Context, *models.User) error
	getByIDFn    func(context.Context, string) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:     func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:    func(_ context.Context, id string) (*models.User, error) { return nil, models.NewNotFoundError("User", id) },
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
	}
}

// fakeHasher "hashes" by prefixing, which keeps tests fast and deterministic.
type fakeHasher struct {
	hashErr    error
	compareErr error
}

func (h fakeHasher) Hash(plain string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}
	return "hashed:" + plain, nil
}

func (h fakeHasher) Compare(plain, digest string) (bool, error) {
	if h.compareErr != nil {
		return false, h.compareErr
	}
	return digest == "hashed:"+plain, nil
}

type fakeCodec struct {
	issueErr error
}

func (c fakeCodec) Issue(userID string) (string, error) {
	if c.issueErr != nil {
		return "", c.issueErr
	}
	return "token-for-" + userID, nil
}

func (c fakeCodec) Verify(token string) (string, error) {
	return "", nil
}

func strPtr(s string) *string { return &s }
