package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/kiranvs080988/Boutique1/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler exposes the destructive maintenance endpoints. The admin key
// is hashed once at construction so only the hash stays in memory; every
// request must present the key in the X-Admin-Key header.
type AdminHandler struct {
	clientRepo   repository.ClientRepository
	orderRepo    repository.WorkOrderRepository
	adminKeyHash []byte
}

func NewAdminHandler(clientRepo repository.ClientRepository, orderRepo repository.WorkOrderRepository, adminKey string) (*AdminHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin key: %w", err)
	}
	return &AdminHandler{
		clientRepo:   clientRepo,
		orderRepo:    orderRepo,
		adminKeyHash: hash,
	}, nil
}

// RequireAdminKey is the middleware guarding the admin route group.
func (h *AdminHandler) RequireAdminKey(c *gin.Context) {
	key := c.GetHeader("X-Admin-Key")
	if err := bcrypt.CompareHashAndPassword(h.adminKeyHash, []byte(key)); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
		return
	}
	c.Next()
}

// ResetDatabase deletes every work order and client.
func (h *AdminHandler) ResetDatabase(c *gin.Context) {
	ordersDeleted, err := h.orderRepo.DeleteAll()
	if err != nil {
		respondError(c, err)
		return
	}
	clientsDeleted, err := h.clientRepo.DeleteAll()
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("Database reset: deleted %d work orders and %d clients", ordersDeleted, clientsDeleted)
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Database reset successful. Deleted %d work orders and %d clients.",
			ordersDeleted, clientsDeleted),
		"success": true,
	})
}

func (h *AdminHandler) DeleteAllWorkOrders(c *gin.Context) {
	count, err := h.orderRepo.DeleteAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully deleted %d work orders.", count),
		"success": true,
	})
}

// DeleteAllClients removes all clients and, through the cascade, all their
// work orders.
func (h *AdminHandler) DeleteAllClients(c *gin.Context) {
	ordersDeleted, err := h.orderRepo.DeleteAll()
	if err != nil {
		respondError(c, err)
		return
	}
	clientsDeleted, err := h.clientRepo.DeleteAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Successfully deleted %d clients and %d associated work orders.",
			clientsDeleted, ordersDeleted),
		"success": true,
	})
}

func (h *AdminHandler) DatabaseStats(c *gin.Context) {
	clients, err := h.clientRepo.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	orders, err := h.orderRepo.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clients":       clients,
		"work_orders":   orders,
		"total_records": clients + orders,
	})
}
