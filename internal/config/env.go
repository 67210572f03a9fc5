package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr   string
	GinMode   string
	DBUser    string
	DBPass    string
	DBHost    string
	DBName    string
	JWTSecret string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dbUser := envOr("DB_USER", "root")
	dbPass := os.Getenv("DB_PASS")
	dbHost := envOr("DB_HOST", "127.0.0.1:3306")
	dbName := envOr("DB_NAME", "airport_assist")

	secret := envOr("JWT_SECRET", "super-secret-key-change-me")

	return Env{
		AppAddr:   appAddr,
		GinMode:   ginMode,
		DBUser:    dbUser,
		DBPass:    dbPass,
		DBHost:    dbHost,
		DBName:    dbName,
		JWTSecret: secret,
	}
}

func envOr(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
