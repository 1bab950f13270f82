package app

import (
	"nortetech-site/config"
	"nortetech-site/internal/blob"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	ContentDB   *gorm.DB
	RedisClient *redis.Client
	Files       *blob.Store
	Validator   *validator.Validate
	AdminSpec   *openapi3.T // nil when request validation is off
}
