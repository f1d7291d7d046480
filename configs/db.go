package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}
