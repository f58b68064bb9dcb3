package services_test

import (
	"context"
	"testing"

	"github.com/joshua-takyi/staywise/internal/models"
	"github.com/joshua-takyi/staywise/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListPropertiesReturnsAll(t *testing.T) {
	propertyRepo := new(MockPropertyRepo)
	svc := services.NewPropertyService(propertyRepo)

	expected := []*models.Property{
		{ID: primitive.NewObjectID(), Title: "Seaside Villa", PropertyType: models.PropertyTypeVilla},
		{ID: primitive.NewObjectID(), Title: "Harbour View Hotel", PropertyType: models.PropertyTypeHotel},
	}
	propertyRepo.On("ListProperties", mock.Anything).Return(expected, nil)

	properties, err := svc.ListProperties(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, properties)
	propertyRepo.AssertExpectations(t)
}

func TestGetPropertyByIDMalformed(t *testing.T) {
	propertyRepo := new(MockPropertyRepo)
	svc := services.NewPropertyService(propertyRepo)

	property, err := svc.GetPropertyByID(context.Background(), "zzzz")
	assert.Nil(t, property)
	assert.ErrorIs(t, err, models.ErrInvalidID)
	propertyRepo.AssertNotCalled(t, "GetPropertyByID", mock.Anything, mock.Anything)
}

func TestGetPropertyByIDNotFound(t *testing.T) {
	propertyRepo := new(MockPropertyRepo)
	svc := services.NewPropertyService(propertyRepo)

	id := primitive.NewObjectID()
	propertyRepo.On("GetPropertyByID", mock.Anything, id).Return(nil, models.ErrPropertyNotFound)

	property, err := svc.GetPropertyByID(context.Background(), id.Hex())
	assert.Nil(t, property)
	assert.ErrorIs(t, err, models.ErrPropertyNotFound)
}

func TestGetPropertyByIDFound(t *testing.T) {
	propertyRepo := new(MockPropertyRepo)
	svc := services.NewPropertyService(propertyRepo)

	expected := &models.Property{
		ID:           primitive.NewObjectID(),
		Title:        "Lakeside Resort",
		Price:        1450,
		PropertyType: models.PropertyTypeResort,
	}
	propertyRepo.On("GetPropertyByID", mock.Anything, expected.ID).Return(expected, nil)

	property, err := svc.GetPropertyByID(context.Background(), expected.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, expected, property)
}
