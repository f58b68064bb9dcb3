package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PropertyTypeHotel  = "hotel"
	PropertyTypeVilla  = "villa"
	PropertyTypeResort = "resort"
)

// Property is read-only reference data for this service; records are seeded
// out of band (see cmd/seed).
type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title        string             `bson:"title" json:"title" validate:"required"`
	Description  string             `bson:"description" json:"description" validate:"required"`
	Location     string             `bson:"location" json:"location" validate:"required"`
	Price        float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Images       []string           `bson:"images" json:"images" validate:"required,min=1"`
	PropertyType string             `bson:"propertyType" json:"propertyType" validate:"required,oneof=hotel villa resort"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p *Property) BeforeCreate() error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	return nil
}
