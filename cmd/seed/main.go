// Command seed loads a starter property catalog into MongoDB. Properties
// are reference data for the API, so they are created here rather than
// through any HTTP endpoint. Re-running the command skips titles that
// already exist.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/joshua-takyi/staywise/internal/config"
	"github.com/joshua-takyi/staywise/internal/connect"
	"github.com/joshua-takyi/staywise/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

var catalog = []models.Property{
	{
		Title:        "Seaside Villa Kokrobite",
		Description:  "Four-bedroom villa with a private pool and direct beach access.",
		Location:     "Kokrobite, Greater Accra",
		Price:        2000,
		Images:       []string{"https://images.staywise.dev/properties/kokrobite-villa-1.jpg"},
		PropertyType: models.PropertyTypeVilla,
	},
	{
		Title:        "Harbour View Hotel",
		Description:  "Business hotel overlooking the harbour, minutes from the city centre.",
		Location:     "Tema, Greater Accra",
		Price:        850,
		Images:       []string{"https://images.staywise.dev/properties/harbour-view-1.jpg"},
		PropertyType: models.PropertyTypeHotel,
	},
	{
		Title:        "Lakeside Resort Akosombo",
		Description:  "Resort on the Volta lake with restaurants, spa and water sports.",
		Location:     "Akosombo, Eastern Region",
		Price:        1450,
		Images:       []string{"https://images.staywise.dev/properties/akosombo-resort-1.jpg"},
		PropertyType: models.PropertyTypeResort,
	},
	{
		Title:        "Hilltop Boutique Hotel",
		Description:  "Quiet boutique hotel with panoramic views of the Aburi hills.",
		Location:     "Aburi, Eastern Region",
		Price:        620,
		Images:       []string{"https://images.staywise.dev/properties/aburi-hilltop-1.jpg"},
		PropertyType: models.PropertyTypeHotel,
	},
}

func main() {
	_ = godotenv.Load(".env.local")

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	client, err := connect.MongoDBConnect(cfg)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := connect.MongoDBDisconnect(client); err != nil {
			logger.Error("Error disconnecting from MongoDB", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := models.MongodbNewRepo(client, cfg.DatabaseName)

	if err := repo.EnsureUserIndexes(ctx); err != nil {
		logger.Error("Failed to ensure user indexes", "error", err)
		os.Exit(1)
	}

	col, err := repo.GetCollection(ctx, models.PropertyColName)
	if err != nil {
		logger.Error("Failed to get properties collection", "error", err)
		os.Exit(1)
	}

	seeded := 0
	for i := range catalog {
		property := catalog[i]

		count, err := col.CountDocuments(ctx, bson.M{"title": property.Title})
		if err != nil {
			logger.Error("Failed to check existing property", "title", property.Title, "error", err)
			os.Exit(1)
		}
		if count > 0 {
			logger.Info("Property already seeded, skipping", "title", property.Title)
			continue
		}

		if _, err := repo.CreateProperty(ctx, &property); err != nil {
			logger.Error("Failed to seed property", "title", property.Title, "error", err)
			os.Exit(1)
		}
		seeded++
		logger.Info("Seeded property", "title", property.Title, "type", property.PropertyType)
	}

	logger.Info("Seeding complete", "inserted", seeded, "total", len(catalog))
}
