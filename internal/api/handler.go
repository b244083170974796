package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/internal/services"
)

// Handler groups the route handlers and their dependencies.
type Handler struct {
	auth      *services.AuthService
	products  *services.ProductService
	cart      *services.CartService
	comments  *services.CommentService
	uploads   *services.FileStorage
	jwtSecret []byte
}

func NewHandler(
	auth *services.AuthService,
	products *services.ProductService,
	cart *services.CartService,
	comments *services.CommentService,
	uploads *services.FileStorage,
	jwtSecret string,
) *Handler {
	return &Handler{
		auth:      auth,
		products:  products,
		cart:      cart,
		comments:  comments,
		uploads:   uploads,
		jwtSecret: []byte(jwtSecret),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

// serverError hides unexpected failures behind a generic message.
func (h *Handler) serverError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": true})
}
