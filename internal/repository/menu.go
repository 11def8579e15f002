// Package repository provides data access for the menu catalog.
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/forkful/cart-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/text/currency"
)

// offeringDocument is the MongoDB shape of a menu offering. Prices are
// stored as a decimal string plus an ISO currency code and mapped back to
// model.Money on read.
type offeringDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	PriceAmount   string    `bson:"price_amount"`
	PriceCurrency string    `bson:"price_currency"`
	Category      string    `bson:"category,omitempty"`
	DietaryTag    string    `bson:"dietary_tag,omitempty"`
	Description   string    `bson:"description,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// MenuRepository provides methods for menu catalog operations.
type MenuRepository struct {
	collection *mongo.Collection
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(db *MongoDB) *MenuRepository {
	return &MenuRepository{
		collection: db.Offerings,
	}
}

// GetByID returns one offering, or nil when the catalog has no such entry.
func (r *MenuRepository) GetByID(ctx context.Context, id string) (*model.MenuOffering, error) {
	if id == "" {
		return nil, fmt.Errorf("offering id is empty")
	}

	var doc offeringDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("collection.FindOne: %w", err)
	}

	offering, err := mapOfferingDocumentToDomain(doc)
	if err != nil {
		return nil, fmt.Errorf("mapOfferingDocumentToDomain: %w", err)
	}
	return &offering, nil
}

// List returns the full catalog sorted by category then name.
func (r *MenuRepository) List(ctx context.Context) ([]model.MenuOffering, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("collection.Find: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []offeringDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("cursor.All: %w", err)
	}

	offerings := make([]model.MenuOffering, 0, len(docs))
	for _, doc := range docs {
		offering, err := mapOfferingDocumentToDomain(doc)
		if err != nil {
			return nil, fmt.Errorf("mapOfferingDocumentToDomain: %w", err)
		}
		offerings = append(offerings, offering)
	}
	return offerings, nil
}

// Upsert writes an offering to the catalog, replacing any existing entry
// with the same id. Used by seeding and catalog sync.
func (r *MenuRepository) Upsert(ctx context.Context, offering model.MenuOffering) error {
	if offering.ID == "" {
		return fmt.Errorf("offering id is empty")
	}

	doc := mapOfferingDomainToDocument(offering)
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts)
	if err != nil {
		return fmt.Errorf("collection.ReplaceOne: %w", err)
	}
	return nil
}

// mapOfferingDocumentToDomain converts a MongoDB document to the domain model.
func mapOfferingDocumentToDomain(doc offeringDocument) (model.MenuOffering, error) {
	amount, err := decimal.NewFromString(doc.PriceAmount)
	if err != nil {
		return model.MenuOffering{}, fmt.Errorf("price_amount[%s] is not a valid decimal: %w", doc.PriceAmount, err)
	}

	unit, err := currency.ParseISO(doc.PriceCurrency)
	if err != nil {
		return model.MenuOffering{}, fmt.Errorf("price_currency[%s] is not valid: %w", doc.PriceCurrency, err)
	}

	return model.MenuOffering{
		ID:          doc.ID,
		Name:        doc.Name,
		BasePrice:   model.NewMoney(amount, unit),
		Category:    doc.Category,
		DietaryTag:  doc.DietaryTag,
		Description: doc.Description,
	}, nil
}

// mapOfferingDomainToDocument converts a domain offering to its MongoDB shape.
func mapOfferingDomainToDocument(offering model.MenuOffering) offeringDocument {
	return offeringDocument{
		ID:            offering.ID,
		Name:          offering.Name,
		PriceAmount:   offering.BasePrice.Amount.String(),
		PriceCurrency: offering.BasePrice.Currency.String(),
		Category:      offering.Category,
		DietaryTag:    offering.DietaryTag,
		Description:   offering.Description,
		UpdatedAt:     time.Now(),
	}
}
