package model

import (
	"time"

	"gorm.io/datatypes"
)

// RequestLog is one persisted API call.
type RequestLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	RequestID string    `json:"request_id" gorm:"column:request_id;type:varchar(36);index"`
	Method    string    `json:"method" gorm:"column:method;type:varchar(8)"`
	Path      string    `json:"path" gorm:"column:path;type:varchar(255);index"`
	Status    int       `json:"status" gorm:"column:status"`
	IP        string    `json:"ip" gorm:"column:ip;type:varchar(45)"`
	// Location stores city and country in the format "City/Country" when available.
	Location  string         `json:"location" gorm:"column:location;type:varchar(255)"`
	UserAgent string         `json:"user_agent" gorm:"column:user_agent;type:varchar(512)"`
	Details   datatypes.JSON `json:"details" gorm:"column:details;type:json"`
}
