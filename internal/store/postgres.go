package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvModel maps to the companion_kv table.
type kvModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

func (kvModel) TableName() string {
	return "companion_kv"
}

// PostgresKV stores values in Postgres through gorm.
type PostgresKV struct {
	db *gorm.DB
}

// NewPostgresKV connects to databaseURL and checks the connection.
func NewPostgresKV(ctx context.Context, databaseURL string) (*PostgresKV, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresKV{db: db}, nil
}

// Migrate creates or updates the key/value table.
func (s *PostgresKV) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&kvModel{}); err != nil {
		return fmt.Errorf("failed to migrate companion_kv: %w", err)
	}
	return nil
}

func (s *PostgresKV) Get(ctx context.Context, key string) (string, bool, error) {
	var record kvModel
	result := s.db.WithContext(ctx).Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return "", false, fmt.Errorf("failed to query %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return record.Value, true, nil
}

func (s *PostgresKV) Set(ctx context.Context, key, value string) error {
	record := kvModel{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", key, err)
	}
	return nil
}

func (s *PostgresKV) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&kvModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *PostgresKV) Close() error {
	if s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
