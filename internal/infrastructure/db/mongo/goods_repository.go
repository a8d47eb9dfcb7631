package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/babies-shop/commerce-api/internal/core/domain"
)

const goodsCollection = "goods"

// GoodsRepository implements ports.GoodsRepository using MongoDB.
type GoodsRepository struct {
	col *mongo.Collection
}

func NewGoodsRepository(db *mongo.Database) *GoodsRepository {
	return &GoodsRepository{col: db.Collection(goodsCollection)}
}

type mongoGoods struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description,omitempty"`
	Category    string             `bson:"category"`
	Quantity    int                `bson:"quantity"`
	Image       string             `bson:"image,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func toMongoGoods(g *domain.Goods) mongoGoods {
	return mongoGoods{
		Name:        g.Name,
		Price:       g.Price,
		Description: g.Description,
		Category:    g.Category,
		Quantity:    g.Quantity,
		Image:       g.Image,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

func (m mongoGoods) toDomain() *domain.Goods {
	return &domain.Goods{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Category:    m.Category,
		Quantity:    m.Quantity,
		Image:       m.Image,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *GoodsRepository) Create(ctx context.Context, g *domain.Goods) (*domain.Goods, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toMongoGoods(g))
	if err != nil {
		return nil, storeErr(err)
	}

	created := *g
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *GoodsRepository) FindByID(ctx context.Context, id string) (*domain.Goods, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrGoodsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mg mongoGoods
	err = withReadRetry(ctx, func(ctx context.Context) error {
		return r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&mg)
	})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoodsNotFound
		}
		return nil, err
	}
	return mg.toDomain(), nil
}

// FindByIDs resolves a set of goods ids in one $in query. Ids that do not
// resolve (malformed or deleted) are simply absent from the result.
func (r *GoodsRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Goods, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	out := make(map[string]*domain.Goods, len(oids))
	if len(oids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := withReadRetry(ctx, func(ctx context.Context) error {
		cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		found := make(map[string]*domain.Goods, len(oids))
		for cursor.Next(ctx) {
			var mg mongoGoods
			if err := cursor.Decode(&mg); err != nil {
				return err
			}
			g := mg.toDomain()
			found[g.ID] = g
		}
		if err := cursor.Err(); err != nil {
			return err
		}
		out = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *GoodsRepository) List(ctx context.Context) ([]*domain.Goods, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var goods []*domain.Goods
	err := withReadRetry(ctx, func(ctx context.Context) error {
		cursor, err := r.col.Find(ctx, bson.M{})
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		var page []*domain.Goods
		for cursor.Next(ctx) {
			var mg mongoGoods
			if err := cursor.Decode(&mg); err != nil {
				return err
			}
			page = append(page, mg.toDomain())
		}
		if err := cursor.Err(); err != nil {
			return err
		}
		goods = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return goods, nil
}

func (r *GoodsRepository) Update(ctx context.Context, g *domain.Goods) (*domain.Goods, error) {
	oid, err := primitive.ObjectIDFromHex(g.ID)
	if err != nil {
		return nil, domain.ErrGoodsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        g.Name,
		"price":       g.Price,
		"description": g.Description,
		"category":    g.Category,
		"quantity":    g.Quantity,
		"image":       g.Image,
		"updated_at":  g.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, storeErr(err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrGoodsNotFound
	}

	return r.FindByID(ctx, g.ID)
}

func (r *GoodsRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrGoodsNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeErr(err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGoodsNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the goods collection needs.
func (r *GoodsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
