package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const PropertyColName = "properties"

type PropertyRepo interface {
	ListProperties(ctx context.Context) ([]*Property, error)
	GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*Property, error)
	CreateProperty(ctx context.Context, property *Property) (*Property, error)
}

func (mdb *MongodbRepo) ListProperties(ctx context.Context) ([]*Property, error) {
	col, err := mdb.GetCollection(ctx, PropertyColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding properties: %v", err)
	}
	defer cursor.Close(ctx)

	properties := []*Property{}
	for cursor.Next(ctx) {
		var property Property
		if err := cursor.Decode(&property); err != nil {
			return nil, fmt.Errorf("error decoding property: %v", err)
		}
		properties = append(properties, &property)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return properties, nil
}

func (mdb *MongodbRepo) GetPropertyByID(ctx context.Context, id primitive.ObjectID) (*Property, error) {
	col, err := mdb.GetCollection(ctx, PropertyColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var property Property
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("error finding property by id: %v", err)
	}

	return &property, nil
}

// CreateProperty is used by the seeding tool; the API itself never writes
// to the catalog.
func (mdb *MongodbRepo) CreateProperty(ctx context.Context, property *Property) (*Property, error) {
	if err := Validate.Struct(property); err != nil {
		return nil, fmt.Errorf("invalid property data: %w", err)
	}

	col, err := mdb.GetCollection(ctx, PropertyColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := property.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare property for creation: %w", err)
	}
	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err = col.InsertOne(ctx, property)
	if err != nil {
		return nil, fmt.Errorf("error inserting property: %v", err)
	}

	return property, nil
}
