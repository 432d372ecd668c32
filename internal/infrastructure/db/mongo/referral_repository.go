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

	"github.com/coursehub/storefront/internal/core/domain"
)

const collectionReferralCodes = "referral_codes"

type ReferralRepository struct {
	col *mongo.Collection
}

func NewReferralRepository(db *mongo.Database) *ReferralRepository {
	return &ReferralRepository{col: db.Collection(collectionReferralCodes)}
}

type referralDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Code            string             `bson:"code"`
	OwnerID         string             `bson:"owner_id"`
	DiscountPercent int                `bson:"discount_percent"`
	Visits          int64              `bson:"visits"`
	Active          bool               `bson:"active"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d *referralDoc) toDomain() *domain.ReferralCode {
	return &domain.ReferralCode{
		ID:              d.ID.Hex(),
		Code:            d.Code,
		OwnerID:         d.OwnerID,
		DiscountPercent: d.DiscountPercent,
		Visits:          d.Visits,
		Active:          d.Active,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

// Create inserts a code and fills in its ID.
func (r *ReferralRepository) Create(ctx context.Context, code *domain.ReferralCode) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, referralDoc{
		Code:            code.Code,
		OwnerID:         code.OwnerID,
		DiscountPercent: code.DiscountPercent,
		Visits:          code.Visits,
		Active:          code.Active,
		CreatedAt:       code.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrReferralCodeExists
		}
		return fmt.Errorf("insert referral code: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		code.ID = id.Hex()
	}
	return nil
}

func (r *ReferralRepository) FindByCode(ctx context.Context, code string) (*domain.ReferralCode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc referralDoc
	if err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReferralCodeNotFound
		}
		return nil, fmt.Errorf("find referral code: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ReferralRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.ReferralCode, error) {
	return r.list(ctx, bson.M{"owner_id": ownerID})
}

func (r *ReferralRepository) ListAll(ctx context.Context) ([]*domain.ReferralCode, error) {
	return r.list(ctx, bson.M{})
}

func (r *ReferralRepository) list(ctx context.Context, filter bson.M) ([]*domain.ReferralCode, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list referral codes: %w", err)
	}

	var docs []referralDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode referral codes: %w", err)
	}

	out := make([]*domain.ReferralCode, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// IncrementVisits atomically bumps the visit counter of an active code.
func (r *ReferralRepository) IncrementVisits(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"code": code, "active": true},
		bson.M{"$inc": bson.M{"visits": 1}},
	)
	if err != nil {
		return fmt.Errorf("increment visits: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReferralCodeNotFound
	}
	return nil
}

// EnsureIndexes creates necessary indexes on the referral codes collection.
func (r *ReferralRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
