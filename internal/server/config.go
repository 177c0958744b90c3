package server

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ListenAddr     string
	SampleRate     int
	MaxSampleRate  int
	MaxDurationSec float64
	MaxBodyBytes   int64
	CORSOrigins    []string
}

func Load() *Config {
	return &Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		SampleRate:     getEnvInt("SAMPLE_RATE", 44100),
		MaxSampleRate:  getEnvInt("MAX_SAMPLE_RATE", 192000),
		MaxDurationSec: getEnvFloat("MAX_DURATION_SEC", 120),
		MaxBodyBytes:   int64(getEnvInt("MAX_BODY_BYTES", 1<<16)),
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil && v > 0 {
		return v
	}
	return fallback
}
