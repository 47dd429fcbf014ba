package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type apiConfig struct {
	engine              *Engine
	cache               Cache
	dailyForecast       []DailyForecast
	weatherDetails      WeatherDetails
	cacheTTL            time.Duration
	autoRefreshInterval time.Duration
	port                string
	devMode             bool
	logger              *slog.Logger
}

// getEnv retrieves an environment variable by key, with a fallback value.
func getEnv(key, fallback string, logger *slog.Logger) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
	return fallback
}

// getEnvAsInt retrieves an environment variable as an integer, with a fallback value.
func getEnvAsInt(key string, fallback int, logger *slog.Logger) int {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		logger.Info("environment variable not set, using fallback", "key", key, "fallback", fallback)
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		logger.Warn("invalid integer value for environment variable, using fallback", "key", key, "value", valStr, "error", err)
		return fallback
	}
	return val
}

func config() *apiConfig {
	devModeStr := os.Getenv("DEV_MODE")
	devMode, err := strconv.ParseBool(devModeStr)
	if err != nil {
		devMode = false
	}

	var logger *slog.Logger
	if devMode {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on environment variables")
	}

	// Redis is optional: the snapshot cache falls back to an in-process map
	// so the demo runs with no infrastructure at all.
	var cache Cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			logger.Error("could not parse Redis URL", "error", err)
			os.Exit(1)
		}
		redisClient := redis.NewClient(opt)
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Error("could not connect to Redis", "error", err)
			os.Exit(1)
		}
		cache = NewRedisCache(redisClient)
		logger.Debug("using redis snapshot cache")
	} else {
		cache = NewMemoryCache()
		logger.Debug("using in-memory snapshot cache")
	}

	// A fixed RANDOM_SEED makes forecast generation reproducible across runs,
	// which is handy when demoing.
	var gen *ForecastGenerator
	if seed := getEnvAsInt("RANDOM_SEED", 0, logger); seed != 0 {
		gen = NewSeededForecastGenerator(uint64(seed))
	} else {
		gen = NewForecastGenerator()
	}

	refreshDelayMs := getEnvAsInt("REFRESH_DELAY_MS", 1000, logger)
	autoRefreshMin := getEnvAsInt("AUTO_REFRESH_INTERVAL_MIN", 30, logger)
	cacheTTLMin := getEnvAsInt("CACHE_TTL_MIN", 10, logger)

	engine := NewEngine(
		sampleLocations(),
		gen,
		realClock{},
		time.Duration(refreshDelayMs)*time.Millisecond,
		logger,
	)

	cfg := apiConfig{
		engine:              engine,
		cache:               cache,
		dailyForecast:       sampleDailyForecast(),
		weatherDetails:      sampleWeatherDetails(),
		cacheTTL:            time.Duration(cacheTTLMin) * time.Minute,
		autoRefreshInterval: time.Duration(autoRefreshMin) * time.Minute,
		port:                getEnv("PORT", "8080", logger),
		devMode:             devMode,
		logger:              logger,
	}

	return &cfg
}
