package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/config"
	"github.com/kiranvs080988/Boutique1/internal/database"
	"github.com/kiranvs080988/Boutique1/internal/models"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.WorkOrder{},
		&models.Client{},
	)
	if err != nil {
		log.Fatal("Failed to drop tables:", err)
	}

	fmt.Println("Recreating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Seeding sample data...")
	now := time.Now()

	clients := []models.Client{
		{Name: "Priya Sharma", MobileNumber: "9876543210", Email: "priya@example.com", Address: "12 MG Road, Kochi"},
		{Name: "Anita Menon", MobileNumber: "9845012345", Address: "45 Beach Road, Kozhikode"},
		{Name: "Lakshmi Nair", MobileNumber: "9900112233", Email: "lakshmi@example.com"},
	}
	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			log.Fatal("Failed to seed clients:", err)
		}
	}

	orders := []models.WorkOrder{
		{
			ClientID:             clients[0].ID,
			ExpectedDeliveryDate: now.Add(48 * time.Hour),
			Description:          "Silk saree blouse with embroidery",
			Notes:                "Gold thread work on sleeves",
			Status:               models.StatusStarted,
			AdvancePaid:          500,
			TotalEstimate:        1200,
		},
		{
			ClientID:             clients[0].ID,
			ExpectedDeliveryDate: now.Add(-24 * time.Hour),
			Description:          "Lehenga alteration",
			Status:               models.StatusFinished,
			AdvancePaid:          300,
			TotalEstimate:        800,
		},
		{
			ClientID:             clients[1].ID,
			ExpectedDeliveryDate: now.Add(12 * time.Hour),
			Description:          "Wedding saree fall and pico",
			Notes:                "Urgent - wedding on Saturday",
			Status:               models.StatusOrderPlaced,
			TotalEstimate:        350,
		},
		{
			ClientID:             clients[2].ID,
			ExpectedDeliveryDate: now.Add(-72 * time.Hour),
			Description:          "Churidar set stitching",
			Status:               models.StatusDeliveredFullyPaid,
			AdvancePaid:          900,
			TotalEstimate:        900,
			ActualAmount:         900,
			DueCleared:           true,
		},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			log.Fatal("Failed to seed work orders:", err)
		}
	}

	fmt.Printf("Done. Seeded %d clients and %d work orders.\n", len(clients), len(orders))
}
