package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"krishimitra-backend/controllers"
	"krishimitra-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every controller onto the /api surface. Routes that read
// or write farmer-owned data sit behind middleware.RequireAuth; catalog-style
// reads (tools, schemes, market prices, pest alerts) stay public.
func SetupRouter(
	ac *controllers.AuthController,
	tc *controllers.ToolController,
	bc *controllers.BookingController,
	asc *controllers.AssistantController,
	dc *controllers.DiseaseController,
	wc *controllers.WeatherController,
	mc *controllers.MarketController,
	cc *controllers.CalendarController,
	ec *controllers.ExpenseController,
	yc *controllers.YieldController,
	sc *controllers.SchemeController,
	pc *controllers.PestController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		profile := api.Group("/profile", middleware.RequireAuth())
		{
			profile.GET("", ac.GetProfile)
			profile.PUT("", ac.UpdateProfile)
		}

		tools := api.Group("/tools")
		{
			tools.GET("", tc.GetTools)
			tools.GET("/:id", tc.GetTool)
			tools.POST("", middleware.RequireAuth(), tc.CreateTool)
			tools.PUT("/:id", middleware.RequireAuth(), tc.UpdateTool)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("/:id", bc.UpdateBookingStatus)
		}

		assistant := api.Group("/assistant", middleware.RequireAuth())
		{
			assistant.POST("/chat", asc.Chat)
			assistant.GET("/history", asc.History)
		}

		diseases := api.Group("/diseases", middleware.RequireAuth())
		{
			diseases.POST("/detect", dc.Detect)
			diseases.GET("/history", dc.History)
		}

		weather := api.Group("/weather", middleware.RequireAuth())
		{
			weather.POST("", wc.Current)
			weather.GET("/alerts", wc.Alerts)
		}

		market := api.Group("/market-prices")
		{
			market.GET("", mc.List)
			market.GET("/latest", mc.Latest)
			market.GET("/crops", mc.Crops)
			market.POST("/refresh", mc.Refresh)
		}

		calendar := api.Group("/calendar", middleware.RequireAuth())
		{
			calendar.GET("", cc.ListEntries)
			calendar.POST("", cc.CreateEntry)
			calendar.PUT("/:id", cc.UpdateEntry)
			calendar.DELETE("/:id", cc.DeleteEntry)
			calendar.POST("/reminders", cc.CreateReminder)
			calendar.PUT("/reminders/:id", cc.CompleteReminder)
			calendar.GET("/reminders/upcoming", cc.UpcomingReminders)
		}

		expenses := api.Group("/expenses", middleware.RequireAuth())
		{
			expenses.GET("", ec.GetExpenses)
			expenses.POST("", ec.CreateExpense)
			expenses.DELETE("/:id", ec.DeleteExpense)
		}

		api.GET("/analytics/summary", middleware.RequireAuth(), ec.GetAnalytics)

		yields := api.Group("/yields", middleware.RequireAuth())
		{
			yields.GET("", yc.GetRecords)
			yields.POST("", yc.CreateRecord)
			yields.DELETE("/:id", yc.DeleteRecord)
			yields.POST("/predict", yc.Predict)
			yields.GET("/predictions", yc.GetPredictions)
		}

		schemes := api.Group("/schemes")
		{
			schemes.GET("", sc.GetSchemes)
			schemes.GET("/:id", sc.GetScheme)
		}

		pests := api.Group("/pest-alerts")
		{
			pests.GET("", pc.GetAlerts)
			pests.POST("", middleware.RequireAuth(), pc.CreateAlert)
			pests.POST("/:id/confirm", middleware.RequireAuth(), pc.ConfirmAlert)
		}
	}

	return r
}
