package container

import (
	"log/slog"

	"github.com/joshua-takyi/staywise/internal/auth"
	"github.com/joshua-takyi/staywise/internal/config"
	"github.com/joshua-takyi/staywise/internal/models"
	"github.com/joshua-takyi/staywise/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger          *slog.Logger
	Config          *config.Config
	MongoDBClient   *mongo.Client
	Repo            *models.MongodbRepo
	Tokens          *auth.Service
	UserService     *services.UserService
	PropertyService *services.PropertyService
	BookingService  *services.BookingService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.DatabaseName)
	tokens := auth.NewService(cfg.JWTSecret, auth.TokenTTL)

	userService := services.NewUserService(repo, tokens)
	propertyService := services.NewPropertyService(repo)
	bookingService := services.NewBookingService(repo, repo)

	return &Container{
		Logger:          logger,
		Config:          cfg,
		MongoDBClient:   mongoDBClient,
		Repo:            repo,
		Tokens:          tokens,
		UserService:     userService,
		PropertyService: propertyService,
		BookingService:  bookingService,
	}
}
