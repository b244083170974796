package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shoply/server/internal/api"
	"github.com/shoply/server/internal/config"
	"github.com/shoply/server/internal/repository"
	"github.com/shoply/server/internal/services"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	if err := mongoClient.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}
	log.Println("Successfully connected to MongoDB")

	db := mongoClient.Database(cfg.DatabaseName)

	// Duplicate signups race the application-level check; the unique index
	// settles it.
	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := db.Collection("users").Indexes().CreateOne(ctx, indexModel); err != nil {
		log.Printf("Warning: Failed to create index on users: %v", err)
	}

	users := repository.NewMongoUserRepository(db)
	products := repository.NewMongoProductRepository(db)
	comments := repository.NewMongoCommentRepository(db)

	var mailer services.EmailService
	if cfg.SMTPHost != "" {
		mailer = services.NewSMTPEmailService(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
			cfg.SMTPFrom,
		)
	}

	authService := services.NewAuthService(users, mailer, cfg.JWTSecret)
	productService := services.NewProductService(products, users)
	cartService := services.NewCartService(users, products)
	commentService := services.NewCommentService(comments)
	uploads := services.NewFileStorage(cfg.UploadDir)

	handler := api.NewHandler(authService, productService, cartService, commentService, uploads, cfg.JWTSecret)

	router := gin.New()
	router.Use(gin.Recovery(), api.CORS(), api.RequestLogger())
	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("Server has been started on PORT: %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server exited properly")
}
