package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CollectionRow is the single table the whole data set lives in: one row
// per collection, the value a JSON array of records.
type CollectionRow struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

func (CollectionRow) TableName() string { return "collections" }

// Gorm persists collections through a GORM connection (SQLite in
// production).
type Gorm struct {
	DB *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&CollectionRow{}); err != nil {
		return nil, err
	}
	return &Gorm{DB: db}, nil
}

func (g *Gorm) Get(key string) ([]byte, bool, error) {
	var row CollectionRow
	err := g.DB.First(&row, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Data, true, nil
}

func (g *Gorm) Set(key string, value []byte) error {
	row := CollectionRow{Name: key, Data: value, UpdatedAt: time.Now()}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

func (g *Gorm) Delete(key string) error {
	return g.DB.Delete(&CollectionRow{}, "name = ?", key).Error
}
