package db

import (
	"bingo-backend/internal/app/game"
	"bingo-backend/internal/app/session"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(
		&session.Player{},
		&session.Session{},
		&game.Board{},
		&game.Claim{},
	); err != nil {
		return err
	}

	logger.Info("Database schema migrated")
	return nil
}
