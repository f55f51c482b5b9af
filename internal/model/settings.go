package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user dashboard preferences. A default row is
// synthesized on first read.
type UserSettings struct {
	UserID               uuid.UUID     `json:"user_id" gorm:"type:char(36);primaryKey"`
	Autopilot            bool          `json:"autopilot" gorm:"not null;default:false"`
	RiskProfile          RiskTolerance `json:"risk_profile" gorm:"size:20;not null;default:'balanced'"`
	NotificationsEnabled bool          `json:"notifications_enabled" gorm:"not null;default:true"`
	AlertThreshold       int           `json:"alert_threshold" gorm:"not null;default:5"`
	EmailNotifications   bool          `json:"email_notifications" gorm:"not null;default:true"`
	SMSNotifications     bool          `json:"sms_notifications" gorm:"not null;default:false"`
	Email                string        `json:"email" gorm:"size:255"`
	Phone                string        `json:"phone" gorm:"size:32"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// DefaultSettings returns the defaults applied when a user has no stored row.
func DefaultSettings(userID uuid.UUID, email string) *UserSettings {
	return &UserSettings{
		UserID:               userID,
		Autopilot:            false,
		RiskProfile:          RiskBalanced,
		NotificationsEnabled: true,
		AlertThreshold:       5,
		EmailNotifications:   true,
		Email:                email,
	}
}
