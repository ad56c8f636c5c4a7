package repository

import (
	"context"
	"errors"
	"time"

	"postboard/internal/database"
	"postboard/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *userDocument) toModel() *models.User {
	return &models.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

type postDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Image     string             `bson:"image"`
	User      primitive.ObjectID `bson:"user"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d *postDocument) toModel() *models.Post {
	return &models.Post{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		Image:     d.Image,
		UserID:    d.User.Hex(),
		CreatedAt: d.CreatedAt,
	}
}

type mongoUserRepository struct {
	users *mongo.Collection
}

// NewMongoUserRepository returns a UserRepository over the users collection of db.
func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &mongoUserRepository{users: db.Collection(database.UsersCollection)}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *models.User) error {
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewConflictError(emailTakenMessage, err)
		}
		return models.NewInternalError(err)
	}
	user.ID = doc.ID.Hex()
	user.CreatedAt = doc.CreatedAt
	return nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("User", id)
	}
	var doc userDocument
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("User", id)
		}
		return nil, models.NewInternalError(err)
	}
	return doc.toModel(), nil
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var doc userDocument
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return doc.toModel(), nil
}

type mongoPostRepository struct {
	posts *mongo.Collection
}

// NewMongoPostRepository returns a PostRepository over the posts collection of db.
func NewMongoPostRepository(db *mongo.Database) PostRepository {
	return &mongoPostRepository{posts: db.Collection(database.PostsCollection)}
}

func (r *mongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	owner, err := primitive.ObjectIDFromHex(post.UserID)
	if err != nil {
		return models.NewInternalError(err)
	}
	doc := postDocument{
		ID:        primitive.NewObjectID(),
		Title:     post.Title,
		Body:      post.Body,
		Image:     post.Image,
		User:      owner,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := r.posts.InsertOne(ctx, doc); err != nil {
		return models.NewInternalError(err)
	}
	post.ID = doc.ID.Hex()
	post.CreatedAt = doc.CreatedAt
	return nil
}

func (r *mongoPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.NewNotFoundError("Post", id)
	}
	var doc postDocument
	if err := r.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return doc.toModel(), nil
}

func (r *mongoPostRepository) List(ctx context.Context) ([]*models.Post, error) {
	// ObjectIDs grow with insertion time, so _id order is creation order.
	cursor, err := r.posts.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var docs []postDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, models.NewInternalError(err)
	}

	posts := make([]*models.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].toModel())
	}
	return posts, nil
}

func (r *mongoPostRepository) Update(ctx context.Context, post *models.Post) error {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return models.NewNotFoundError("Post", post.ID)
	}
	result, err := r.posts.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title": post.Title,
		"body":  post.Body,
		"image": post.Image,
	}})
	if err != nil {
		return models.NewInternalError(err)
	}
	if result.MatchedCount == 0 {
		return models.NewNotFoundError("Post", post.ID)
	}
	return nil
}

func (r *mongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.NewNotFoundError("Post", id)
	}
	result, err := r.posts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.NewInternalError(err)
	}
	if result.DeletedCount == 0 {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}
