package services

import (
	"fmt"
	"testing"

	"github.com/kiranvs080988/Boutique1/internal/models"
	"github.com/kiranvs080988/Boutique1/internal/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db         *gorm.DB
	clientRepo repository.ClientRepository
	orderRepo  repository.WorkOrderRepository
	clients    ClientService
	orders     WorkOrderService
	dashboard  DashboardService
}

func setupTestEnv(t *testing.T) *testEnv {
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

	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewWorkOrderRepository(db)

	// A nil cache disables redis so the services run against the store alone.
	return &testEnv{
		db:         db,
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
		clients:    NewClientService(clientRepo, orderRepo, nil),
		orders:     NewWorkOrderService(orderRepo, clientRepo, nil),
		dashboard:  NewDashboardService(orderRepo, clientRepo, nil),
	}
}
