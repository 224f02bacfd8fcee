// database/seeder.go
package database

import (
	"backoffice-app/models"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUserMaster(db)
	SeedSuppliers(db)
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Name:     "Administrator",
		Email:    "admin@backoffice.local",
		Password: string(hashed),
		Role:     "admin",
	}

	var existing models.User
	if err := db.Where("username = ?", admin.Username).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&admin).Error; err != nil {
				log.Fatalf("Failed to seed admin user: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedSuppliers(db *gorm.DB) {
	suppliers := []models.Supplier{
		{SupplierCode: "PRODUCE", SupplierName: "Local Produce Market", Category: "produce"},
		{SupplierCode: "BEV", SupplierName: "Beverage Distributors", Category: "beverages"},
	}

	for _, s := range suppliers {
		var existing models.Supplier
		if err := db.Where("supplier_code = ?", s.SupplierCode).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}
