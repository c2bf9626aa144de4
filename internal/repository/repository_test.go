package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Client{}, &models.WorkOrder{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestClient(t *testing.T, db *gorm.DB, name, mobile string) *models.Client {
	t.Helper()
	client := &models.Client{Name: name, MobileNumber: mobile}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}

func createTestOrder(t *testing.T, db *gorm.DB, order *models.WorkOrder) *models.WorkOrder {
	t.Helper()
	if order.Status == "" {
		order.Status = models.StatusOrderPlaced
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("failed to create test work order: %v", err)
	}
	return order
}
