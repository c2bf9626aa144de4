package main

import (
	"log"
	"net/http"
	"time"

	"github.com/kiranvs080988/Boutique1/internal/config"
	"github.com/kiranvs080988/Boutique1/internal/database"
	"github.com/kiranvs080988/Boutique1/internal/handlers"
	"github.com/kiranvs080988/Boutique1/internal/redis"
	"github.com/kiranvs080988/Boutique1/internal/repository"
	"github.com/kiranvs080988/Boutique1/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache. The dashboard works without it, so a missing
	// redis only costs the caching.
	cache, err := redis.Initialize(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
	if err != nil {
		log.Printf("Warning: Redis unavailable, dashboard caching disabled: %v", err)
		cache = nil
	}

	// Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewWorkOrderRepository(db)

	// Initialize services
	clientService := services.NewClientService(clientRepo, orderRepo, cache)
	orderService := services.NewWorkOrderService(orderRepo, clientRepo, cache)
	dashboardService := services.NewDashboardService(orderRepo, clientRepo, cache)

	// Initialize handlers
	clientHandler := handlers.NewClientHandler(clientService)
	orderHandler := handlers.NewWorkOrderHandler(orderService)
	searchHandler := handlers.NewSearchHandler(orderService, clientService)
	statusHandler := handlers.NewStatusHandler()
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler, err := handlers.NewAdminHandler(clientRepo, orderRepo, cfg.AdminKey)
	if err != nil {
		log.Fatal("Failed to initialize admin handler:", err)
	}

	// Setup routes
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	clients := router.Group("/clients")
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
		clients.DELETE("/:id", clientHandler.DeleteClient)
		clients.GET("/summary/id/:id", clientHandler.GetSummary)
		clients.GET("/summary/mobile/:mobile", clientHandler.GetSummaryByMobile)
		clients.GET("/search/mobile/:mobile", clientHandler.FindByMobile)
	}

	workOrders := router.Group("/work-orders")
	{
		workOrders.POST("", orderHandler.CreateWorkOrder)
		workOrders.GET("", orderHandler.ListWorkOrders)
		workOrders.GET("/:id", orderHandler.GetWorkOrder)
		workOrders.PUT("/:id", orderHandler.UpdateWorkOrder)
		workOrders.DELETE("/:id", orderHandler.DeleteWorkOrder)
		workOrders.GET("/priority/list", orderHandler.PriorityList)
		workOrders.GET("/filter/advanced", orderHandler.FilterAdvanced)
		workOrders.GET("/status/overdue", orderHandler.GetOverdue)
		workOrders.GET("/status/due-today", orderHandler.GetDueToday)
		workOrders.GET("/status/active", orderHandler.GetActive)
	}

	status := router.Group("/status")
	{
		status.GET("/options", statusHandler.GetOptions)
		status.GET("/workflow", statusHandler.GetWorkflow)
		status.GET("/next-options/:current", statusHandler.GetNextOptions)
		status.GET("/validation/:status", statusHandler.ValidateStatus)
	}

	search := router.Group("/search")
	{
		search.GET("/work-orders", searchHandler.SearchWorkOrders)
		search.GET("/clients", searchHandler.SearchClients)
		search.GET("/quick-lookup", searchHandler.QuickLookup)
		search.GET("/recent-orders", searchHandler.RecentOrders)
		search.GET("/mobile/:mobile/work-orders", searchHandler.MobileWorkOrders)
		search.PUT("/work-orders/:id/status", searchHandler.UpdateStatusAfterSearch)
	}

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/summary", dashboardHandler.GetSummary)
		dashboard.GET("/metrics/revenue", dashboardHandler.GetRevenueMetrics)
		dashboard.GET("/metrics/orders", dashboardHandler.GetOrderMetrics)
		dashboard.GET("/alerts", dashboardHandler.GetAlerts)
		dashboard.GET("/recent-activity", dashboardHandler.GetRecentActivity)
	}

	admin := router.Group("/admin", adminHandler.RequireAdminKey)
	{
		admin.DELETE("/reset-database", adminHandler.ResetDatabase)
		admin.DELETE("/delete-all-work-orders", adminHandler.DeleteAllWorkOrders)
		admin.DELETE("/delete-all-clients", adminHandler.DeleteAllClients)
		admin.GET("/database-stats", adminHandler.DatabaseStats)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
