package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/macrolog/internal/security"
)

const (
	minSecretKeyLength       = 32
	ephemeralSecretKeyLength = 48
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

var (
	ErrSecretKeyTooShort = errors.New("SECRET_KEY must be at least 32 characters")
	ErrSecretKeyInsecure = errors.New("SECRET_KEY uses a placeholder value")
	ErrInvalidPort       = errors.New("PORT must be a number between 1 and 65535")
	ErrInvalidLogLevel   = errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	ErrInvalidTimeZone   = errors.New("TZ is not a known time zone")
)

type Config struct {
	Location           *time.Location
	DBPath             string
	Port               string
	SecretKey          string
	SecretKeyEphemeral bool
	FoodRulesPath      string
	LogLevel           string
	CookieSecure       bool
}

// Load reads the process environment after merging envFiles (".env" when none
// are given). Variables already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	location, err := resolveLocation()
	if err != nil {
		return Config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	secret, ephemeral, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	level, err := resolveLogLevel()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Location:           location,
		DBPath:             getEnv("DB_PATH", filepath.Join("data", "macrolog.db")),
		Port:               port,
		SecretKey:          secret,
		SecretKeyEphemeral: ephemeral,
		FoodRulesPath:      strings.TrimSpace(os.Getenv("FOOD_RULES_PATH")),
		LogLevel:           level,
		CookieSecure:       getEnvBool("COOKIE_SECURE", false),
	}, nil
}

func resolveLocation() (*time.Location, error) {
	name := getEnv("TZ", "UTC")
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeZone, name)
	}
	return location, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPort, raw)
	}
	return strconv.Itoa(port), nil
}

// resolveSecretKey returns the configured key, or a fresh random one when
// SECRET_KEY is unset. The bool reports that the key was generated.
func resolveSecretKey() (string, bool, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		generated, err := security.EphemeralSecret(ephemeralSecretKeyLength)
		if err != nil {
			return "", false, fmt.Errorf("generate secret key: %w", err)
		}
		return generated, true, nil
	}
	if _, insecure := insecureSecretKeys[strings.ToLower(secret)]; insecure {
		return "", false, ErrSecretKeyInsecure
	}
	if len(secret) < minSecretKeyLength {
		return "", false, ErrSecretKeyTooShort
	}
	return secret, false, nil
}

func resolveLogLevel() (string, error) {
	level := strings.ToLower(getEnv("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "error":
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
	}
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		return fallback
	}
	return value
}
