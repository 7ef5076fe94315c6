package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/careloop/careloop/internal/pkg/database"
	"github.com/careloop/careloop/internal/pkg/models"
)

// AuthRepo implements the auth repository interface over PostgreSQL and Redis
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
