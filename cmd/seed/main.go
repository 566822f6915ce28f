// Seeds a small demo catalog so the service can be exercised end to end
// without a real store feed.
package main

import (
	"log"
	"os"

	"github.com/GarvitManralDev/fitlens-backend/internal/model"
	"github.com/GarvitManralDev/fitlens-backend/pkg/database"

	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	products := []model.Product{
		{
			Id: "p_navy_kurta", Title: "Navy Mandarin Kurta", Store: "FitLens Store",
			Url: "https://shop.example.com/p_navy_kurta", Image: "https://img.example.com/p_navy_kurta.jpg",
			Tags: datatypes.NewJSONSlice([]string{"traditional", "navy", "mandarin", "regular"}),
		},
		{
			Id: "p_olive_tee", Title: "Olive Crew Tee", Store: "FitLens Store",
			Url: "https://shop.example.com/p_olive_tee", Image: "https://img.example.com/p_olive_tee.jpg",
			Tags: datatypes.NewJSONSlice([]string{"casual", "olive", "crew", "slim"}),
		},
		{
			Id: "p_charcoal_shirt", Title: "Charcoal Relaxed Shirt", Store: "FitLens Store",
			Url: "https://shop.example.com/p_charcoal_shirt", Image: "https://img.example.com/p_charcoal_shirt.jpg",
			Tags: datatypes.NewJSONSlice([]string{"casual", "charcoal", "relaxed", "drape"}),
		},
		{
			Id: "p_cream_henley", Title: "Cream Henley", Store: "FitLens Store",
			Url: "https://shop.example.com/p_cream_henley", Image: "https://img.example.com/p_cream_henley.jpg",
			Tags: datatypes.NewJSONSlice([]string{"casual", "cream", "henley", "regular"}),
		},
		{
			Id: "p_maroon_sherwani", Title: "Maroon Sherwani", Store: "FitLens Store",
			Url: "https://shop.example.com/p_maroon_sherwani", Image: "https://img.example.com/p_maroon_sherwani.jpg",
			Tags: datatypes.NewJSONSlice([]string{"traditional", "maroon", "longline", "structured-shoulder"}),
		},
	}

	prices := []model.Price{
		{ProductId: "p_navy_kurta", Price: intPtr(1499), Mrp: intPtr(1999),
			Sizes: datatypes.NewJSONSlice([]string{"S", "M", "L"}), InStock: boolPtr(true)},
		{ProductId: "p_olive_tee", Price: intPtr(799), Mrp: intPtr(999),
			Sizes: datatypes.NewJSONSlice([]string{"M", "L", "XL"}), InStock: boolPtr(true)},
		{ProductId: "p_charcoal_shirt", Price: intPtr(1299),
			Sizes: datatypes.NewJSONSlice([]string{"M", "L"}), InStock: boolPtr(true)},
		{ProductId: "p_cream_henley", Price: intPtr(999), Mrp: intPtr(1299),
			Sizes: datatypes.NewJSONSlice([]string{"S", "M"}), InStock: boolPtr(false)},
		// No price row for p_maroon_sherwani: exercised as the joinless case.
	}

	for i := range products {
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&products[i]).Error; err != nil {
			log.Fatalf("Error: seed product %s: %v", products[i].Id, err)
		}
	}
	for i := range prices {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}},
			UpdateAll: true,
		}).Create(&prices[i]).Error; err != nil {
			log.Fatalf("Error: seed price for %s: %v", prices[i].ProductId, err)
		}
	}

	log.Printf("Seeded %d products and %d price rows", len(products), len(prices))
}
