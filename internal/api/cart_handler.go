package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/internal/services"
)

func (h *Handler) AddToCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
		return
	}

	cart, err := h.cart.AddToCart(c.Request.Context(), user.ID, c.Param("productId"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Product added to cart successfully",
			"data":    cart,
			"error":   false,
		})
	}
}

func (h *Handler) LikeProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
		return
	}

	likes, err := h.cart.AddToLikes(c.Request.Context(), user.ID, c.Param("productId"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Product added to likes successfully",
			"data":    likes,
			"error":   false,
		})
	}
}

// UserCart resolves the full product record for every reference in the cart.
// References to deleted products come back as null entries.
func (h *Handler) UserCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
		return
	}

	products, err := h.cart.GetCart(c.Request.Context(), user.ID)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Okay", "products": products})
	}
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
		return
	}

	cart, err := h.cart.RemoveFromCart(c.Request.Context(), user.ID, c.Param("productId"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{
			"message": "Product removed from cart",
			"data":    cart,
			"error":   false,
		})
	}
}
