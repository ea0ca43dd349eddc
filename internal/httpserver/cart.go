package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Dreadpool/TacticalGearForge/internal/domain"
	cartsvc "github.com/Dreadpool/TacticalGearForge/internal/service/cart"
)

type addCartItemRequest struct {
	ProductID *int `json:"productId" binding:"required,gt=0"`
	Quantity  *int `json:"quantity" binding:"omitempty,gte=1"`
	UserID    *int `json:"userId"`
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=1"`
}

func listCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// The storefront has no session concept: every request sees the
		// single shared cart.
		c.JSON(http.StatusOK, svc.List(nil))
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "invalid cart item data",
				Details: bindingViolations(err),
			})
			return
		}
		item, err := svc.Add(cartsvc.AddInput{
			ProductID: *req.ProductID,
			Quantity:  req.Quantity,
			UserID:    req.UserID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to add item to cart"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func updateCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid cart item id"})
			return
		}
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "invalid quantity",
				Details: bindingViolations(err),
			})
			return
		}
		item, err := svc.UpdateQuantity(id, *req.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, errorResponse{Error: "cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid cart item id"})
			return
		}
		if !svc.Remove(id) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "cart item not found"})
			return
		}
		c.JSON(http.StatusOK, successResponse{Success: true})
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Clear(nil)
		c.JSON(http.StatusOK, successResponse{Success: true})
	}
}
