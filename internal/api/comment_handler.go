package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/internal/services"
)

type createCommentRequest struct {
	Comment string `json:"comment"`
}

func (h *Handler) CreateComment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
		return
	}

	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required", "error": true})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), user.ID, c.Param("productId"), req.Comment)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment text is required", "error": true})
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{
			"message":        "Comment created successfully",
			"createdComment": comment,
			"error":          false,
		})
	}
}

// DeleteComment removes a comment by id. Deleting an id that matches nothing
// still reports success.
func (h *Handler) DeleteComment(c *gin.Context) {
	err := h.comments.Delete(c.Request.Context(), c.Param("commentId"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid comment ID", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully", "error": false})
	}
}
