package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cruisebook/internal/catalog"
	"cruisebook/internal/checkout"
)

func listCruisesHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cruises": cat.Cruises()})
	}
}

func listCabinsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cabins": cat.Cabins()})
	}
}

func listBanksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"banks": checkout.Banks()})
}
