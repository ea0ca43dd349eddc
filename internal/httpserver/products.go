package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	catalogsvc "github.com/Dreadpool/TacticalGearForge/internal/service/catalog"
)

func listProductsHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := svc.List(c.Query("category"))
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(svc *catalogsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid product id"})
			return
		}
		product, err := svc.Get(id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, errorResponse{Error: "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
