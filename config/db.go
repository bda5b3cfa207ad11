package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"krishimitra-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "krishimitra_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts the nationwide reference schemes once. Farmer data
// is never seeded.
func SeedDatabase() {
	var count int64
	DB.Model(&models.GovernmentScheme{}).Count(&count)
	if count > 0 {
		log.Println("Government schemes already seeded")
		return
	}

	now := time.Now()
	schemes := []models.GovernmentScheme{
		{
			SchemeName:         "PM-KISAN",
			SchemeType:         "subsidy",
			Description:        "Income support of Rs 6000 per year to all landholding farmer families, paid in three equal installments.",
			Eligibility:        "All landholding farmer families with cultivable land.",
			Benefits:           "Rs 6000 per year in three installments of Rs 2000.",
			ApplicationProcess: "Register at pmkisan.gov.in or through the nearest Common Service Centre.",
			StartDate:          &now,
			IsActive:           true,
		},
		{
			SchemeName:         "Pradhan Mantri Fasal Bima Yojana",
			SchemeType:         "insurance",
			Description:        "Crop insurance against natural calamities, pests and diseases from pre-sowing to post-harvest.",
			Eligibility:        "All farmers growing notified crops, including sharecroppers and tenant farmers.",
			Benefits:           "Insurance cover at 2% premium for kharif, 1.5% for rabi crops.",
			ApplicationProcess: "Apply through banks, insurance companies or pmfby.gov.in.",
			StartDate:          &now,
			IsActive:           true,
		},
		{
			SchemeName:         "Kisan Credit Card",
			SchemeType:         "loan",
			Description:        "Short-term credit for cultivation, post-harvest expenses and allied activities at subsidised interest.",
			Eligibility:        "Farmers, sharecroppers, tenant farmers and self-help groups.",
			Benefits:           "Credit up to Rs 3 lakh at 4% effective interest with prompt repayment.",
			ApplicationProcess: "Apply at any commercial bank, RRB or cooperative bank branch.",
			StartDate:          &now,
			IsActive:           true,
		},
	}

	if err := DB.Create(&schemes).Error; err != nil {
		log.Printf("warning: failed to seed government schemes: %v", err)
		return
	}
	log.Println("Government schemes seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Farmer{},
		&models.Tool{},
		&models.Booking{},
		&models.ChatMessage{},
		&models.CropCalendarEntry{},
		&models.CropReminder{},
		&models.DiseaseDetection{},
		&models.FarmExpense{},
		&models.GovernmentScheme{},
		&models.MarketPrice{},
		&models.WeatherAlert{},
		&models.YieldRecord{},
		&models.YieldPrediction{},
		&models.PestAlert{},
		&models.PestAlertConfirmation{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
