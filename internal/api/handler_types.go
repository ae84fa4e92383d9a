package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/services"
	"go.uber.org/zap"
)

const (
	authCookieName = "macrolog_auth"
	authTokenTTL   = 7 * 24 * time.Hour
	ownerScope     = "owner"
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	logger       *zap.Logger
	now          func() time.Time
	loginLimiter *attemptLimiter

	repositories  *db.Repositories
	interpreter   *services.FoodInterpreter
	mealService   *services.MealService
	weeklyService *services.WeeklyService
	exportService *services.ExportService
	ownerAuth     *services.OwnerAuthService
}

type mealPayload struct {
	Text string `json:"text" form:"text"`
}

type loginPayload struct {
	Passphrase string `json:"passphrase" form:"passphrase"`
}

type ownerClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}
