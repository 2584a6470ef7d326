package main

import (
	"log"
	"os"
	"strconv"
)

// WorkerConfig holds the worker's own configuration.
type WorkerConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Concurrency   int
}

func loadWorkerConfig() *WorkerConfig {
	cfg := &WorkerConfig{
		RedisAddr:     getEnv("REDIS_HOST", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		Concurrency:   getEnvInt("WORKER_CONCURRENCY", 10),
	}

	log.Printf("[Config] Redis: %s, Concurrency: %d", cfg.RedisAddr, cfg.Concurrency)

	return cfg
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
