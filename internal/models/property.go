// internal/models/property.go
package models

import "time"

// MediaItem describes one uploaded asset attached to a property.
type MediaItem struct {
	PublicID     string            `json:"public_id" bson:"public_id"`
	SecureURL    string            `json:"secure_url" bson:"secure_url"`
	ResourceType MediaResourceType `json:"resource_type" bson:"resource_type"`
	Format       string            `json:"format" bson:"format"`
	Order        int               `json:"order" bson:"order"`
}

type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Title       string         `json:"title" bson:"title"`
	CategoryID  string         `json:"categoryId" bson:"categoryId"`
	Price       float64        `json:"price" bson:"price"`
	Deposit     *float64       `json:"deposit,omitempty" bson:"deposit,omitempty"`
	Location    string         `json:"location" bson:"location"`
	Description string         `json:"description" bson:"description"`
	Features    []string       `json:"features" bson:"features"`
	AgentID     string         `json:"agentId" bson:"agentId"`
	Status      PropertyStatus `json:"status" bson:"status"`
	Media       []MediaItem    `json:"media" bson:"media"`
	CreatedAt   *time.Time     `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// PropertyFields is the caller-supplied part of a property. Identity and
// timestamps are always assigned by the store.
type PropertyFields struct {
	Title       string         `json:"title" bson:"title" validate:"required,max=200"`
	CategoryID  string         `json:"categoryId" bson:"categoryId" validate:"required"`
	Price       float64        `json:"price" bson:"price" validate:"gte=0"`
	Deposit     *float64       `json:"deposit,omitempty" bson:"deposit,omitempty" validate:"omitempty,gte=0"`
	Location    string         `json:"location" bson:"location" validate:"required"`
	Description string         `json:"description" bson:"description" validate:"required"`
	Features    []string       `json:"features" bson:"features"`
	AgentID     string         `json:"agentId" bson:"agentId" validate:"required"`
	Status      PropertyStatus `json:"status" bson:"status" validate:"property_status"`
	Media       []MediaItem    `json:"media" bson:"media"`
}

// PropertyUpdate carries a partial update. Nil fields are left untouched.
type PropertyUpdate struct {
	Title        *string
	CategoryID   *string
	Price        *float64
	Deposit      *float64
	ClearDeposit bool
	Location     *string
	Description  *string
	Features     []string
	SetFeatures  bool
	AgentID      *string
	Status       *PropertyStatus
	Media        []MediaItem
	SetMedia     bool
}

// Fields returns the caller-editable part of the property.
func (p *Property) Fields() PropertyFields {
	return PropertyFields{
		Title:       p.Title,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Deposit:     p.Deposit,
		Location:    p.Location,
		Description: p.Description,
		Features:    append([]string{}, p.Features...),
		AgentID:     p.AgentID,
		Status:      p.Status,
		Media:       append([]MediaItem{}, p.Media...),
	}
}

// FullUpdate converts a complete field set into an update that replaces every field.
func (f PropertyFields) FullUpdate() PropertyUpdate {
	u := PropertyUpdate{
		Title:       &f.Title,
		CategoryID:  &f.CategoryID,
		Price:       &f.Price,
		Location:    &f.Location,
		Description: &f.Description,
		Features:    f.Features,
		SetFeatures: true,
		AgentID:     &f.AgentID,
		Status:      &f.Status,
		Media:       f.Media,
		SetMedia:    true,
	}
	if f.Deposit != nil {
		u.Deposit = f.Deposit
	} else {
		u.ClearDeposit = true
	}
	return u
}

// Apply merges the update into p in place.
func (u PropertyUpdate) Apply(p *Property) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Deposit != nil {
		d := *u.Deposit
		p.Deposit = &d
	} else if u.ClearDeposit {
		p.Deposit = nil
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.SetFeatures {
		p.Features = append([]string{}, u.Features...)
	}
	if u.AgentID != nil {
		p.AgentID = *u.AgentID
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
	if u.SetMedia {
		p.Media = append([]MediaItem{}, u.Media...)
	}
}

// CreatedUnix returns the creation time in seconds, zero when missing.
func (p *Property) CreatedUnix() int64 {
	if p.CreatedAt == nil {
		return 0
	}
	return p.CreatedAt.Unix()
}
