package workers

import (
	"context"
	"time"

	"qost_backend/internal/logger"
	"qost_backend/internal/repositories"

	"gorm.io/gorm"
)

// Expired refresh tokens are dead weight: they can never be presented
// successfully, so they are swept on an interval.
const cleanupInterval = 6 * time.Hour

// TokenCleanupWorker periodically removes expired refresh tokens.
type TokenCleanupWorker struct {
	db   *gorm.DB
	repo repositories.RefreshTokenRepository
}

func NewTokenCleanupWorker(db *gorm.DB, repo repositories.RefreshTokenRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{db: db, repo: repo}
}

// Start launches the sweep loop. It runs until the context is cancelled.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *TokenCleanupWorker) run(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			if err := w.repo.CleanExpired(w.db); err != nil {
				logger.Error("Failed to clean expired refresh tokens", "error", err)
			}
		}
	}
}
