package config

import (
	"flag"
	"os"
)

var (
	RunAddress   string
	DatabaseURI  string
	RedisAddress string
	JWTSecret    string
	LogLevel     string
)

func ParseFlags() {

	flag.StringVar(&RunAddress, "a", ":8080", "address to run server")
	flag.StringVar(&DatabaseURI, "d", "", "database uri")
	flag.StringVar(&RedisAddress, "r", "", "redis address")
	flag.StringVar(&JWTSecret, "s", "", "jwt signing secret")
	flag.StringVar(&LogLevel, "l", "info", "log level")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDRESS"); envRunAddr != "" {
		RunAddress = envRunAddr
	}
	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		DatabaseURI = databaseURI
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		RedisAddress = redisAddress
	}
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		JWTSecret = jwtSecret
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		LogLevel = logLevel
	}
}
