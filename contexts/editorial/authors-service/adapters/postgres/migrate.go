package postgres

import "gorm.io/gorm"

// Migrate applies the authors schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&authorModel{})
}
