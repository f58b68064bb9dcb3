package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/staywise/internal/helpers"
	"github.com/joshua-takyi/staywise/internal/models"
	"github.com/joshua-takyi/staywise/internal/services"
)

func ListProperties(p *services.PropertyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		properties, err := p.ListProperties(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"properties": properties})
	}
}

func GetPropertyByID(p *services.PropertyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		propertyID := helpers.StringTrim(c.Param("id"))
		if propertyID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "property ID is required"})
			return
		}

		property, err := p.GetPropertyByID(c.Request.Context(), propertyID)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid property ID format"})
			case errors.Is(err, models.ErrPropertyNotFound):
				c.JSON(http.StatusNotFound, gin.H{"message": "property not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, property)
	}
}
