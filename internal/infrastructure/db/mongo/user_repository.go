package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository using MongoDB. The whole
// aggregate — profile, cart lines, favorites — lives in one document, so
// Save is a single replace and each operation is all-or-nothing.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(usersCollection)}
}

type mongoCartLine struct {
	GoodsID   string    `bson:"goods_id"`
	Quantity  int       `bson:"quantity"`
	CreatedAt time.Time `bson:"created_at"`
}

type mongoFavorite struct {
	GoodsID   string    `bson:"goods_id"`
	CreatedAt time.Time `bson:"created_at"`
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	FirstName    string             `bson:"firstname"`
	LastName     string             `bson:"lastname"`
	Address      string             `bson:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	Role         string             `bson:"role"`
	Cart         []mongoCartLine    `bson:"cart"`
	Favorites    []mongoFavorite    `bson:"favorites"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	cart := make([]mongoCartLine, len(u.Cart))
	for i, line := range u.Cart {
		cart[i] = mongoCartLine{GoodsID: line.GoodsID, Quantity: line.Quantity, CreatedAt: line.CreatedAt}
	}
	favorites := make([]mongoFavorite, len(u.Favorites))
	for i, fav := range u.Favorites {
		favorites[i] = mongoFavorite{GoodsID: fav.GoodsID, CreatedAt: fav.CreatedAt}
	}
	return mongoUser{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Address:      u.Address,
		Phone:        u.Phone,
		Role:         u.Role,
		Cart:         cart,
		Favorites:    favorites,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m mongoUser) toDomain() *domain.User {
	cart := make([]domain.CartLine, len(m.Cart))
	for i, line := range m.Cart {
		cart[i] = domain.CartLine{GoodsID: line.GoodsID, Quantity: line.Quantity, CreatedAt: line.CreatedAt}
	}
	favorites := make([]domain.Favorite, len(m.Favorites))
	for i, fav := range m.Favorites {
		favorites[i] = domain.Favorite{GoodsID: fav.GoodsID, CreatedAt: fav.CreatedAt}
	}
	return &domain.User{
		ID:           m.ID.Hex(),
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Address:      m.Address,
		Phone:        m.Phone,
		Role:         m.Role,
		Cart:         cart,
		Favorites:    favorites,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoUser(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, storeErr(err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	err = withReadRetry(ctx, func(ctx context.Context) error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mu)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	err := withReadRetry(ctx, func(ctx context.Context) error {
		return r.col.FindOne(ctx, bson.M{"email": email}).Decode(&mu)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return mu.toDomain(), nil
}

// Save replaces the full user document. Write failures are surfaced as
// ErrStoreUnavailable and never retried here: the caller must re-read and
// re-validate before trying again, otherwise a cart increment could be
// applied twice.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toMongoUser(user)
	doc.ID = oid

	_, err = r.col.ReplaceOne(ctx, bson.M{"_id": oid}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// EnsureIndexes creates the unique email index the register path relies on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	_, err := r.col.Indexes().CreateOne(ctx, index)
	return err
}
