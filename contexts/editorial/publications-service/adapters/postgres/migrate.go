package postgresadapter

import "gorm.io/gorm"

// Migrate applies the publications schema, including the status log.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&publicationModel{}, &statusChangeModel{})
}
