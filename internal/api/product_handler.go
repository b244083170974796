package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/internal/models"
	"github.com/shoply/server/internal/services"
)

// CreateProduct accepts a multipart form with the product fields and one or
// more files under "images".
func (h *Handler) CreateProduct(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
		return
	}

	title := c.PostForm("title")
	body := c.PostForm("body")
	category := c.PostForm("category")
	priceStr := c.PostForm("price")
	if title == "" || body == "" || category == "" || priceStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data. Please provide all required fields.",
			"error":   true,
		})
		return
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request data. Please provide all required fields.",
			"error":   true,
		})
		return
	}
	rate, _ := strconv.ParseFloat(c.PostForm("rate"), 64)
	stock, _ := strconv.Atoi(c.PostForm("stock"))

	form, err := c.MultipartForm()
	if err != nil || len(form.File["images"]) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "No images uploaded. Please provide at least one image.",
			"error":   true,
		})
		return
	}

	images := make([]string, 0, len(form.File["images"]))
	for _, file := range form.File["images"] {
		if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid file type. Only image files are allowed.",
				"error":   true,
			})
			return
		}
		name, err := h.uploads.Save(file)
		if err != nil {
			h.serverError(c, err)
			return
		}
		images = append(images, name)
	}

	product, err := h.products.Create(c.Request.Context(), user.ID, &services.CreateProductInput{
		Title:      title,
		Body:       body,
		Category:   category,
		Price:      price,
		Rate:       rate,
		Stock:      stock,
		Size:       c.PostForm("size"),
		Dimensions: c.PostForm("dimensions"),
		Warranty:   c.PostForm("warranty"),
		Materials:  c.PostForm("materials"),
		Images:     images,
	})
	switch {
	case errors.Is(err, services.ErrNotAuthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"data":    product,
			"error":   false,
		})
	}
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product fetched successfully", "data": product, "error": false})
	}
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request data", "error": true})
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), &update)
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "data": product, "error": false})
	}
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	product, err := h.products.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, services.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID", "error": true})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "data": product, "error": false})
	}
}

func (h *Handler) ProductsByCategory(c *gin.Context) {
	products, err := h.products.ByCategory(c.Request.Context(), c.Param("category"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found for this category", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Products fetched successfully", "data": products, "error": false})
	}
}

func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.products.Search(c.Request.Context(), c.Param("query"))
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "No products found matching the search query", "error": true})
	case err != nil:
		h.serverError(c, err)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Products fetched successfully", "data": products, "error": false})
	}
}

func (h *Handler) AllProducts(c *gin.Context) {
	products, err := h.products.All(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all products", "products": products})
}
