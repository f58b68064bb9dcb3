package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/staywise/internal/helpers"
	"github.com/joshua-takyi/staywise/internal/middleware"
	"github.com/joshua-takyi/staywise/internal/models"
	"github.com/joshua-takyi/staywise/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ListBookings(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userId, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		bookings, err := b.ListBookingsForUser(c.Request.Context(), userId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

func CreateBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userId, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		var req struct {
			PropertyID string `json:"propertyId" binding:"required"`
			StartDate  string `json:"startDate" binding:"required"`
			EndDate    string `json:"endDate" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		booking, err := b.CreateBooking(c.Request.Context(), userId, req.PropertyID, req.StartDate, req.EndDate)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidDateRange):
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date range"})
			case errors.Is(err, models.ErrPropertyNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "property not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": booking})
	}
}

func CancelBooking(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		userId, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		bookingID := helpers.StringTrim(c.Param("bookingId"))
		if bookingID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "booking ID is required"})
			return
		}

		if err := b.CancelBooking(c.Request.Context(), bookingID, userId); err != nil {
			if errors.Is(err, models.ErrBookingNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "booking canceled successfully"})
	}
}

func ListBookingsForAdmin(b *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := middleware.Principal(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		bookings, err := b.ListAllBookings(c.Request.Context(), claims.Role)
		if err != nil {
			if errors.Is(err, models.ErrForbidden) {
				c.JSON(http.StatusForbidden, gin.H{"message": "admin access required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}
