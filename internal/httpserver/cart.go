package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisebook/internal/cart"
	"cruisebook/internal/domain"
)

type addCartItemRequest struct {
	ID             string `json:"id" binding:"required"`
	Type           string `json:"type" binding:"required,oneof=cruise cabin"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	UnitPriceCents int64  `json:"unitPriceCents" binding:"min=0"`
	Quantity       int    `json:"quantity"`
	ImageURL       string `json:"imageUrl"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot())
	}
}

func addCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		store.AddItem(domain.CartItem{
			ID:             req.ID,
			Type:           domain.ItemType(req.Type),
			Name:           req.Name,
			Description:    req.Description,
			UnitPriceCents: req.UnitPriceCents,
			Quantity:       req.Quantity,
			ImageURL:       req.ImageURL,
		})
		c.JSON(http.StatusOK, gin.H{
			"cart":    store.Snapshot(),
			"message": req.Name + " added to cart",
		})
	}
}

func updateCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		store.UpdateQuantity(c.Param("id"), req.Quantity)
		c.JSON(http.StatusOK, gin.H{"cart": store.Snapshot()})
	}
}

func removeCartItemHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"cart": store.Snapshot()})
	}
}
