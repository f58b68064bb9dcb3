package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/joshua-takyi/staywise/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo  models.BookingRepo
	propertyRepo models.PropertyRepo
}

func NewBookingService(bookingRepo models.BookingRepo, propertyRepo models.PropertyRepo) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
	}
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Nights computes the number of billable nights between two instants by
// calendar-time subtraction with ceiling division, so a partial last day
// still counts as a full night.
func Nights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// CreateBooking persists a confirmed booking priced against the property's
// current nightly rate. The price is frozen here and never recomputed.
// Overlapping bookings for the same property are intentionally allowed.
func (bs *BookingService) CreateBooking(ctx context.Context, userId primitive.ObjectID, propertyId, startDate, endDate string) (*models.Booking, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, models.ErrInvalidDateRange
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, models.ErrInvalidDateRange
	}
	if !start.Before(end) {
		return nil, models.ErrInvalidDateRange
	}

	propertyObjId, err := primitive.ObjectIDFromHex(propertyId)
	if err != nil {
		return nil, models.ErrPropertyNotFound
	}
	property, err := bs.propertyRepo.GetPropertyByID(ctx, propertyObjId)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserID:     userId,
		PropertyID: property.ID,
		StartDate:  start,
		EndDate:    end,
		Status:     models.BookingStatusConfirmed,
		TotalPrice: float64(Nights(start, end)) * property.Price,
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

// ListBookingsForUser returns the caller's bookings enriched with the
// current property snapshot; a deleted property yields nil details.
func (bs *BookingService) ListBookingsForUser(ctx context.Context, userId primitive.ObjectID) ([]*models.UserBooking, error) {
	return bs.bookingRepo.ListBookingsByUser(ctx, userId)
}

// CancelBooking marks the booking canceled. Lookup is scoped to the owner,
// so canceling a booking that belongs to someone else reports not-found
// rather than confirming its existence.
func (bs *BookingService) CancelBooking(ctx context.Context, bookingId string, userId primitive.ObjectID) error {
	bookingObjId, err := primitive.ObjectIDFromHex(bookingId)
	if err != nil {
		return models.ErrBookingNotFound
	}

	return bs.bookingRepo.CancelBooking(ctx, bookingObjId, userId)
}

// ListAllBookings is the admin aggregate view over every booking in the
// system, each joined with its user and property summaries.
func (bs *BookingService) ListAllBookings(ctx context.Context, requesterRole string) ([]*models.AdminBooking, error) {
	if requesterRole != models.RoleAdmin {
		return nil, models.ErrForbidden
	}

	return bs.bookingRepo.ListAllBookings(ctx)
}
