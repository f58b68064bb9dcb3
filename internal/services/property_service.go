package services

import (
	"context"

	"github.com/joshua-takyi/staywise/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyService struct {
	propertyRepo models.PropertyRepo
}

func NewPropertyService(propertyRepo models.PropertyRepo) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
	}
}

func (ps *PropertyService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	return ps.propertyRepo.ListProperties(ctx)
}

// GetPropertyByID distinguishes a malformed id (models.ErrInvalidID) from a
// structurally valid id with no matching document (models.ErrPropertyNotFound).
func (ps *PropertyService) GetPropertyByID(ctx context.Context, propertyId string) (*models.Property, error) {
	id, err := primitive.ObjectIDFromHex(propertyId)
	if err != nil {
		return nil, models.ErrInvalidID
	}

	return ps.propertyRepo.GetPropertyByID(ctx, id)
}
