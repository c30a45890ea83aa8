package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDriver      string
	DBURL         string
	DBName        string
	RedisAddr     string
	RedisPassword string
	PublicDir     string
	TestMode      bool

	ServerHostname string
	FrontendPort   string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		DBDriver:       strings.ToLower(getEnv("DB_DRIVER", "mongo")),
		DBURL:          getEnv("DB_CONNECTION_STRING", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "messageboard"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		PublicDir:      getEnv("PUBLIC_DIR", "./public"),
		TestMode:       isTestMode(),
		ServerHostname: strings.TrimRight(getEnv("SERVER_HOSTNAME", ""), "/"),
		FrontendPort:   getEnv("FRONTEND_PORT", "3000"),
	}
}

func isTestMode() bool {
	if getEnv("NODE_ENV", "") == "test" {
		return true
	}
	on, _ := strconv.ParseBool(getEnv("TEST_MODE", "false"))
	return on
}

func getEnv(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
