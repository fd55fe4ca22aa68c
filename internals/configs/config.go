package configs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret  string
	StoreID    string
	StorePass  string
	ServerURL  string
	ClientURL  string
	SSLSandbox bool
	MongoURI   string
	DBName     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, using system ENV")
	} else {
		log.Println("[INFO] .env file loaded")
	}

	JWTSecret = GetEnv("ACCESS_TOKEN_SECRET")
	StoreID = GetEnv("STORE_ID")
	StorePass = GetEnv("STORE_PASS")
	ServerURL = GetEnv("SERVER_URL", "http://localhost:5000")
	ClientURL = GetEnv("CLIENT_URL", "http://localhost:5173")
	SSLSandbox = GetEnv("SSL_SANDBOX", "true") == "true"
	DBName = GetEnv("DB_NAME", "EventsDB")
	MongoURI = buildMongoURI()

	if JWTSecret == "" {
		log.Println("[ERROR] ACCESS_TOKEN_SECRET is not set!")
	}
	if StoreID == "" || StorePass == "" {
		log.Println("[ERROR] STORE_ID / STORE_PASS not set, payment gateway calls will fail")
	}
}

// buildMongoURI prefers a full MONGO_URI; otherwise it assembles one from the
// DB_USER/DB_PASS/DB_HOST credentials the deployment provides.
func buildMongoURI() string {
	if uri := GetEnv("MONGO_URI"); uri != "" {
		return uri
	}
	user := GetEnv("DB_USER")
	pass := GetEnv("DB_PASS")
	host := GetEnv("DB_HOST", "localhost:27017")
	if user == "" {
		return fmt.Sprintf("mongodb://%s", host)
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority", user, pass, host)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
