package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCanceled  = "canceled"
)

type Booking struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	PropertyID primitive.ObjectID `bson:"propertyId" json:"propertyId"`
	StartDate  time.Time          `bson:"startDate" json:"startDate"`
	EndDate    time.Time          `bson:"endDate" json:"endDate"`
	Status     string             `bson:"status" json:"status"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// UserBooking is a booking enriched with the current property snapshot.
// PropertyDetails is nil when the referenced property no longer exists.
type UserBooking struct {
	Booking         `bson:",inline"`
	PropertyDetails *Property `bson:"propertyDetails" json:"propertyDetails"`
}

// AdminBooking is a booking enriched with both the owning user and the
// property. Either side may be nil when the reference is dangling.
type AdminBooking struct {
	Booking         `bson:",inline"`
	UserDetails     *UserSummary `bson:"userDetails" json:"userDetails"`
	PropertyDetails *Property    `bson:"propertyDetails" json:"propertyDetails"`
}

func (b *Booking) BeforeCreate() error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Status == "" {
		b.Status = BookingStatusConfirmed
	}
	return nil
}
