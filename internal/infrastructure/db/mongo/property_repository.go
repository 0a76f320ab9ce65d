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

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
)

const collectionProperties = "properties"

type PropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{coll: db.Collection(collectionProperties)}
}

type mongoProperty struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Deposit     float64            `bson:"deposit"`
	Type        string             `bson:"type"`
	Location    domain.Location    `bson:"location"`
	Amenities   []string           `bson:"amenities"`
	Images      []string           `bson:"images"`
	LandlordID  primitive.ObjectID `bson:"landlord_id"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mp *mongoProperty) toDomain() *domain.Property {
	return &domain.Property{
		ID:          mp.ID.Hex(),
		Title:       mp.Title,
		Description: mp.Description,
		Price:       mp.Price,
		Deposit:     mp.Deposit,
		Type:        mp.Type,
		Location:    mp.Location,
		Amenities:   mp.Amenities,
		Images:      mp.Images,
		LandlordID:  mp.LandlordID.Hex(),
		Status:      domain.PropertyStatus(mp.Status),
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	landlordOID, err := primitive.ObjectIDFromHex(p.LandlordID)
	if err != nil {
		return nil, fmt.Errorf("invalid landlord id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoProperty{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Deposit:     p.Deposit,
		Type:        p.Type,
		Location:    p.Location,
		Amenities:   p.Amenities,
		Images:      p.Images,
		LandlordID:  landlordOID,
		Status:      string(p.Status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProperty
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"deposit":     p.Deposit,
		"type":        p.Type,
		"location":    p.Location,
		"amenities":   p.Amenities,
		"images":      p.Images,
		"status":      string(p.Status),
		"updated_at":  time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mp mongoProperty
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("update property: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// List returns matching properties newest-first. The filter mirrors the
// public listing query: exact city and type matches, inclusive price
// ceiling, and an always-present status restriction.
func (r *PropertyRepository) List(ctx context.Context, filter ports.ListPropertiesFilter) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"status": string(filter.Status)}
	if filter.City != "" {
		query["location.city"] = filter.City
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.MaxPrice > 0 {
		query["price"] = bson.M{"$lte": filter.MaxPrice}
	}

	return r.find(ctx, query)
}

func (r *PropertyRepository) ListByLandlord(ctx context.Context, landlordID string) ([]*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(landlordID)
	if err != nil {
		return []*domain.Property{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"landlord_id": oid})
}

func (r *PropertyRepository) find(ctx context.Context, query bson.M) ([]*domain.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer cur.Close(ctx)

	properties := []*domain.Property{}
	for cur.Next(ctx) {
		var mp mongoProperty
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		properties = append(properties, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// EnsureIndexes creates the indexes backing the listing and dashboard queries.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "landlord_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}
