// Package store provides engine.Store implementations: Postgres via GORM for
// production and an in-memory store for tests.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oskarhn/gridword-backend/internal/model"
)

type GormStore struct {
	db *gorm.DB
}

// OpenPostgres connects with the pgx-backed driver and migrates the game
// tables.
func OpenPostgres(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.AutoMigrate(&model.Game{}, &model.Player{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (s *GormStore) CreateGame(ctx context.Context, g *model.Game, players []*model.Player) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(g).Error; err != nil {
			return err
		}
		for _, p := range players {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *GormStore) GetGame(ctx context.Context, gameID string) (*model.Game, error) {
	var g model.Game
	err := s.db.WithContext(ctx).First(&g, "id = ?", gameID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GormStore) SaveGame(ctx context.Context, g *model.Game) error {
	return s.db.WithContext(ctx).Save(g).Error
}

func (s *GormStore) GetPlayers(ctx context.Context, gameID string) ([]*model.Player, error) {
	var players []*model.Player
	err := s.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("position asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (s *GormStore) SavePlayer(ctx context.Context, p *model.Player) error {
	return s.db.WithContext(ctx).Save(p).Error
}
