package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"bistro-backend/models"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv     string
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	JWTSecret  string

	DeliveryFeeCents    int
	MinOrderCents       int
	PickupLeadMinutes   int
	DeliveryLeadMinutes int

	OpeningTime      string
	ClosingTime      string
	SlotIntervalMins int
	MaxGuestsPerSlot int
	Tables           []models.Table
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("APP_PORT", getEnv("PORT", "8082")),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "bistro"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		JWTSecret:  getEnv("JWT_SECRET", "secret"),

		DeliveryFeeCents:    getEnvInt("DELIVERY_FEE_CENTS", 499),
		MinOrderCents:       getEnvInt("MIN_ORDER_CENTS", 1000),
		PickupLeadMinutes:   getEnvInt("PICKUP_LEAD_MINUTES", 20),
		DeliveryLeadMinutes: getEnvInt("DELIVERY_LEAD_MINUTES", 45),

		OpeningTime:      getEnv("OPENING_TIME", "11:00"),
		ClosingTime:      getEnv("CLOSING_TIME", "22:00"),
		SlotIntervalMins: getEnvInt("SLOT_INTERVAL_MINUTES", 30),
		MaxGuestsPerSlot: getEnvInt("MAX_GUESTS_PER_SLOT", 20),
		Tables:           parseTables(getEnv("TABLE_CAPACITIES", "2,2,4,4,6,6,8,8")),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
	log.Printf("Table inventory: %d tables, max %d guests per slot", len(AppConfig.Tables), AppConfig.MaxGuestsPerSlot)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

// parseTables turns "2,2,4,4" into numbered tables in listed order.
// Table numbers start at 1 and stay stable across restarts as long as
// the list itself does not change.
func parseTables(raw string) []models.Table {
	tables := []models.Table{}
	for _, part := range strings.Split(raw, ",") {
		capacity, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || capacity <= 0 {
			log.Printf("Warning: skipping invalid table capacity %q", part)
			continue
		}
		tables = append(tables, models.Table{Number: len(tables) + 1, Capacity: capacity})
	}
	return tables
}
