package api

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	// Uploaded files are served statically by generated name.
	r.Static("/static", h.uploads.Dir())

	r.GET("/", h.Health)

	r.POST("/api/create-user", h.CreateUser)
	r.POST("/api/login", h.Login)
	r.GET("/api/get-user/:userId", h.GetUser)
	r.GET("/api/all-users", h.AllUsers)

	r.GET("/get-product/:id", h.GetProduct)
	r.PUT("/api/update-product/:id", h.UpdateProduct)
	r.DELETE("/remove-product/:id", h.DeleteProduct)
	r.GET("/api/get-product-with-category/:category", h.ProductsByCategory)
	r.GET("/api/search/:query", h.SearchProducts)
	r.GET("/api/all-products", h.AllProducts)

	authed := r.Group("/api", Auth(h.jwtSecret))
	authed.POST("/create-product", h.CreateProduct)
	authed.POST("/add-to-cart/:productId", h.AddToCart)
	authed.GET("/user-cart", h.UserCart)
	authed.DELETE("/remove-from-cart/:productId", h.RemoveFromCart)
	authed.POST("/like/:productId", h.LikeProduct)
	authed.PUT("/update-user", h.UpdateAvatar)
	authed.POST("/comment/:productId", h.CreateComment)
	authed.DELETE("/comment/:commentId", h.DeleteComment)
}
