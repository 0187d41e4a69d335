package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/plazaops/property-system/internal/core/domain"
)

const vacantShopsCollection = "vacant_shops"

type VacantShopRepository struct {
	coll *mongo.Collection
}

func NewVacantShopRepository(db *mongo.Database) *VacantShopRepository {
	return &VacantShopRepository{coll: db.Collection(vacantShopsCollection)}
}

type mongoVacantShop struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ShopNumber string             `bson:"shop_number"`
	Dimensions string             `bson:"dimensions"`
	UserID     string             `bson:"user"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func fromDomainVacantShop(s *domain.VacantShop) mongoVacantShop {
	return mongoVacantShop{
		ShopNumber: s.ShopNumber,
		Dimensions: s.Dimensions,
		UserID:     s.UserID,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (ms mongoVacantShop) toDomain() *domain.VacantShop {
	return &domain.VacantShop{
		ID:         ms.ID.Hex(),
		ShopNumber: ms.ShopNumber,
		Dimensions: ms.Dimensions,
		UserID:     ms.UserID,
		CreatedAt:  ms.CreatedAt,
		UpdatedAt:  ms.UpdatedAt,
	}
}

func (r *VacantShopRepository) Create(ctx context.Context, s *domain.VacantShop) (*domain.VacantShop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainVacantShop(s))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrVacantShopExists
		}
		return nil, fmt.Errorf("insert vacant shop: %w", err)
	}

	created := *s
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns all listings sorted ascending by shop number.
func (r *VacantShopRepository) List(ctx context.Context) ([]*domain.VacantShop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "shop_number", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list vacant shops: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoVacantShop
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode vacant shops: %w", err)
	}

	shops := make([]*domain.VacantShop, 0, len(docs))
	for _, d := range docs {
		shops = append(shops, d.toDomain())
	}
	return shops, nil
}

func (r *VacantShopRepository) FindByID(ctx context.Context, id string) (*domain.VacantShop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrVacantShopNotFound
	}

	var ms mongoVacantShop
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVacantShopNotFound
		}
		return nil, fmt.Errorf("find vacant shop: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *VacantShopRepository) FindByShopNumber(ctx context.Context, shopNumber string) (*domain.VacantShop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoVacantShop
	if err := r.coll.FindOne(ctx, bson.M{"shop_number": shopNumber}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVacantShopNotFound
		}
		return nil, fmt.Errorf("find vacant shop by number: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *VacantShopRepository) Update(ctx context.Context, s *domain.VacantShop) (*domain.VacantShop, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return nil, domain.ErrVacantShopNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromDomainVacantShop(s))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrVacantShopExists
		}
		return nil, fmt.Errorf("update vacant shop: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrVacantShopNotFound
	}
	return s, nil
}

func (r *VacantShopRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrVacantShopNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete vacant shop: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrVacantShopNotFound
	}
	return nil
}

// EnsureIndexes creates the unique shop-number index.
func (r *VacantShopRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "shop_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
