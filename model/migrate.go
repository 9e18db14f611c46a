package model

import "gorm.io/gorm"

// Migrate creates or updates every table the API uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Doctor{}, &Room{}, &Patient{}, &Appointment{}, &RequestLog{})
}
