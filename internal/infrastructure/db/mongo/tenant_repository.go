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

const tenantsCollection = "tenants"

type TenantRepository struct {
	coll *mongo.Collection
}

func NewTenantRepository(db *mongo.Database) *TenantRepository {
	return &TenantRepository{coll: db.Collection(tenantsCollection)}
}

// mongoTenant mirrors domain.Tenant with an ObjectID primary key.
type mongoTenant struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	UserID string             `bson:"user"`

	ShopName    string `bson:"shop_name"`
	ShopNumber  string `bson:"shop_number"`
	ShopFacing  string `bson:"shop_facing"`
	FloorNumber int    `bson:"floor_number"`

	TenantName        string `bson:"tenant_name"`
	TenantAddress     string `bson:"tenant_address"`
	TenantPhoneNumber string `bson:"tenant_phone_number"`
	TenantEmail       string `bson:"tenant_email,omitempty"`

	AdvancePay             float64    `bson:"advance_pay"`
	AdvancePayDate         time.Time  `bson:"advance_pay_date"`
	RentalPaymentDate      int        `bson:"rental_payment_date"`
	RentAmount             float64    `bson:"rent_amount"`
	MonthlyRentPaidAmount1 float64    `bson:"monthly_rent_paid_amount1"`
	MonthlyRentPaidAmount2 float64    `bson:"monthly_rent_paid_amount2"`
	MonthlyRentPaidDate1   *time.Time `bson:"monthly_rent_paid_date1,omitempty"`
	MonthlyRentPaidDate2   *time.Time `bson:"monthly_rent_paid_date2,omitempty"`
	BalanceAmountPending   float64    `bson:"balance_amount_pending"`

	TNEBNumber        string     `bson:"tneb_number,omitempty"`
	RentIncrementDate *time.Time `bson:"rent_increment_date,omitempty"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func fromDomainTenant(t *domain.Tenant) mongoTenant {
	return mongoTenant{
		UserID:                 t.UserID,
		ShopName:               t.ShopName,
		ShopNumber:             t.ShopNumber,
		ShopFacing:             t.ShopFacing,
		FloorNumber:            t.FloorNumber,
		TenantName:             t.TenantName,
		TenantAddress:          t.TenantAddress,
		TenantPhoneNumber:      t.TenantPhoneNumber,
		TenantEmail:            t.TenantEmail,
		AdvancePay:             t.AdvancePay,
		AdvancePayDate:         t.AdvancePayDate,
		RentalPaymentDate:      t.RentalPaymentDate,
		RentAmount:             t.RentAmount,
		MonthlyRentPaidAmount1: t.MonthlyRentPaidAmount1,
		MonthlyRentPaidAmount2: t.MonthlyRentPaidAmount2,
		MonthlyRentPaidDate1:   t.MonthlyRentPaidDate1,
		MonthlyRentPaidDate2:   t.MonthlyRentPaidDate2,
		BalanceAmountPending:   t.BalanceAmountPending,
		TNEBNumber:             t.TNEBNumber,
		RentIncrementDate:      t.RentIncrementDate,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}

func (mt mongoTenant) toDomain() *domain.Tenant {
	return &domain.Tenant{
		ID:                     mt.ID.Hex(),
		UserID:                 mt.UserID,
		ShopName:               mt.ShopName,
		ShopNumber:             mt.ShopNumber,
		ShopFacing:             mt.ShopFacing,
		FloorNumber:            mt.FloorNumber,
		TenantName:             mt.TenantName,
		TenantAddress:          mt.TenantAddress,
		TenantPhoneNumber:      mt.TenantPhoneNumber,
		TenantEmail:            mt.TenantEmail,
		AdvancePay:             mt.AdvancePay,
		AdvancePayDate:         mt.AdvancePayDate,
		RentalPaymentDate:      mt.RentalPaymentDate,
		RentAmount:             mt.RentAmount,
		MonthlyRentPaidAmount1: mt.MonthlyRentPaidAmount1,
		MonthlyRentPaidAmount2: mt.MonthlyRentPaidAmount2,
		MonthlyRentPaidDate1:   mt.MonthlyRentPaidDate1,
		MonthlyRentPaidDate2:   mt.MonthlyRentPaidDate2,
		BalanceAmountPending:   mt.BalanceAmountPending,
		TNEBNumber:             mt.TNEBNumber,
		RentIncrementDate:      mt.RentIncrementDate,
		CreatedAt:              mt.CreatedAt,
		UpdatedAt:              mt.UpdatedAt,
	}
}

// Create inserts a new lease document. The shop-number unique index turns
// duplicates into ErrShopNumberTaken regardless of which administrator
// already holds the number.
func (r *TenantRepository) Create(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainTenant(t))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrShopNumberTaken
		}
		return nil, fmt.Errorf("insert tenant: %w", err)
	}

	created := *t
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *TenantRepository) ListByOwner(ctx context.Context, userID string) ([]*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoTenant
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode tenants: %w", err)
	}

	tenants := make([]*domain.Tenant, 0, len(docs))
	for _, d := range docs {
		tenants = append(tenants, d.toDomain())
	}
	return tenants, nil
}

func (r *TenantRepository) FindByID(ctx context.Context, id string) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTenantNotFound
	}

	var mt mongoTenant
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTenantNotFound
		}
		return nil, fmt.Errorf("find tenant: %w", err)
	}
	return mt.toDomain(), nil
}

// Update replaces the stored document. A concurrent delete surfaces as
// ErrTenantNotFound rather than a silently lost write.
func (r *TenantRepository) Update(ctx context.Context, t *domain.Tenant) (*domain.Tenant, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(t.ID)
	if err != nil {
		return nil, domain.ErrTenantNotFound
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, fromDomainTenant(t))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrShopNumberTaken
		}
		return nil, fmt.Errorf("update tenant: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrTenantNotFound
	}
	return t, nil
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTenantNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTenantNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index and the global unique shop-number
// index.
func (r *TenantRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{
			Keys:    bson.D{{Key: "shop_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
