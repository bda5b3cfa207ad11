package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"krishimitra-backend/config"
	"krishimitra-backend/controllers"
	"krishimitra-backend/routes"
	"krishimitra-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established and migrations applied")

	aiClient := services.NewAIClientFromEnv()

	// Initialize services
	authService := services.NewAuthService(db)
	toolService := services.NewToolService(db)
	bookingService := services.NewBookingService(db)
	assistantService := services.NewAssistantService(db, aiClient)
	diseaseService := services.NewDiseaseService(db, aiClient)
	weatherService := services.NewWeatherService(db)
	marketService := services.NewMarketService(db)
	calendarService := services.NewCalendarService(db)
	expenseService := services.NewExpenseService(db)
	yieldService := services.NewYieldService(db, aiClient)
	schemeService := services.NewSchemeService(db)
	pestService := services.NewPestService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	toolController := controllers.NewToolController(toolService)
	bookingController := controllers.NewBookingController(bookingService)
	assistantController := controllers.NewAssistantController(assistantService)
	diseaseController := controllers.NewDiseaseController(diseaseService)
	weatherController := controllers.NewWeatherController(weatherService)
	marketController := controllers.NewMarketController(marketService)
	calendarController := controllers.NewCalendarController(calendarService)
	expenseController := controllers.NewExpenseController(expenseService)
	yieldController := controllers.NewYieldController(yieldService)
	schemeController := controllers.NewSchemeController(schemeService)
	pestController := controllers.NewPestController(pestService)

	router := routes.SetupRouter(
		authController,
		toolController,
		bookingController,
		assistantController,
		diseaseController,
		weatherController,
		marketController,
		calendarController,
		expenseController,
		yieldController,
		schemeController,
		pestController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
