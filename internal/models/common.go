// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model for the relational tables
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// JSONB is stored as jsonb on PostgreSQL and as text on SQLite.
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		return json.Unmarshal(v, j)
	case string:
		return json.Unmarshal([]byte(v), j)
	default:
		return nil
	}
}

// Enums
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusOccupied  PropertyStatus = "occupied"
	PropertyStatusHidden    PropertyStatus = "hidden"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusOccupied, PropertyStatusHidden:
		return true
	}
	return false
}

// Toggled flips between available and occupied. Hidden listings become available.
func (s PropertyStatus) Toggled() PropertyStatus {
	if s == PropertyStatusAvailable {
		return PropertyStatusOccupied
	}
	return PropertyStatusAvailable
}

type MediaResourceType string

const (
	MediaResourceImage MediaResourceType = "image"
	MediaResourceVideo MediaResourceType = "video"
)
