package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const BookingColName = "bookings"

type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *Booking) (*Booking, error)
	ListBookingsByUser(ctx context.Context, userId primitive.ObjectID) ([]*UserBooking, error)
	CancelBooking(ctx context.Context, bookingId, userId primitive.ObjectID) error
	ListAllBookings(ctx context.Context) ([]*AdminBooking, error)
}

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) (*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if err := booking.BeforeCreate(); err != nil {
		return nil, fmt.Errorf("failed to prepare booking for creation: %w", err)
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	_, err = col.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("error inserting booking: %v", err)
	}

	return booking, nil
}

// ListBookingsByUser joins each booking with the current property document.
// A dangling propertyId leaves propertyDetails null rather than dropping
// the booking from the listing.
func (mdb *MongodbRepo) ListBookingsByUser(ctx context.Context, userId primitive.ObjectID) ([]*UserBooking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userId}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         PropertyColName,
			"localField":   "propertyId",
			"foreignField": "_id",
			"as":           "propertyDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$propertyDetails",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*UserBooking{}
	for cursor.Next(ctx) {
		var booking UserBooking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}

// CancelBooking flips the booking to canceled. The filter matches on both
// booking id and owner, so a non-owner gets the same "not found" as a
// missing booking. The current status is deliberately not part of the
// filter: re-canceling applies the same terminal state again.
func (mdb *MongodbRepo) CancelBooking(ctx context.Context, bookingId, userId primitive.ObjectID) error {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"_id": bookingId, "userId": userId}
	update := bson.M{
		"$set": bson.M{
			"status":    BookingStatusCanceled,
			"updatedAt": time.Now(),
		},
	}

	res, err := col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating booking: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ListAllBookings returns every booking joined with its user and property.
// Dangling references degrade to null details instead of failing the
// request.
func (mdb *MongodbRepo) ListAllBookings(ctx context.Context) ([]*AdminBooking, error) {
	col, err := mdb.GetCollection(ctx, BookingColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         UserColName,
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "userDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$userDetails",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         PropertyColName,
			"localField":   "propertyId",
			"foreignField": "_id",
			"as":           "propertyDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$propertyDetails",
			"preserveNullAndEmptyArrays": true,
		}}},
		// Keep the password hash out of the joined user document.
		{{Key: "$project", Value: bson.M{"userDetails.password": 0}}},
		{{Key: "$sort", Value: bson.M{"createdAt": -1}}},
	}

	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*AdminBooking{}
	for cursor.Next(ctx) {
		var booking AdminBooking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %v", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return bookings, nil
}
