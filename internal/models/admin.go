// internal/models/admin.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AdminUser struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"`
	Name         string     `json:"name" gorm:"size:100"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt  *time.Time `json:"last_login_at"`
}

func (u *AdminUser) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *AdminUser) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// AuditLog records one mutating admin request.
type AuditLog struct {
	BaseModel
	AdminID      *uuid.UUID `json:"admin_id" gorm:"type:uuid;index"`
	Action       string     `json:"action" gorm:"size:150;not null;index"`
	ResourceType string     `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   string     `json:"resource_id" gorm:"size:64;index"`
	Payload      JSONB      `json:"payload" gorm:"type:jsonb"`
	IPAddress    string     `json:"ip_address" gorm:"size:45"`
	UserAgent    string     `json:"user_agent" gorm:"type:text"`
	StatusCode   int        `json:"status_code"`

	// Relationships
	Admin *AdminUser `json:"admin,omitempty" gorm:"foreignKey:AdminID"`
}
