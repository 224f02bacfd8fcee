// database/migrate.go
package database

import (
	"backoffice-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.LoginConflict{},
		&models.Taking{},
		&models.WeeklyCost{},
		&models.Staff{},
		&models.PayrollRecord{},
		&models.Supplier{},
		&models.Subscription{},
		&models.License{},
		&models.Task{},
		&models.Invoice{},
		&models.FileLog{},
	)
}
