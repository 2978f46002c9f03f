// internal/forms/property.go
package forms

import (
	"fmt"
	"strings"

	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/utils"
)

// FieldError reports an invalid staged field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PropertyInput is a partial set of staged values. Nil fields are left as they are.
type PropertyInput struct {
	Title       *string                `json:"title"`
	CategoryID  *string                `json:"categoryId"`
	Price       *NumericInput          `json:"price"`
	Deposit     *NumericInput          `json:"deposit"`
	Location    *string                `json:"location"`
	Description *string                `json:"description"`
	AgentID     *string                `json:"agentId"`
	Status      *models.PropertyStatus `json:"status" validate:"omitempty,property_status"`
	Features    []string               `json:"features"`
	Media       []models.MediaItem     `json:"media"`
}

// PropertyForm stages the edits of one property until submission.
type PropertyForm struct {
	id          string
	title       string
	categoryID  string
	price       NumericInput
	deposit     NumericInput
	location    string
	description string
	agentID     string
	status      models.PropertyStatus
	features    Features
	media       MediaList
}

// NewPropertyForm starts a create form with default values.
func NewPropertyForm() *PropertyForm {
	return &PropertyForm{
		status:   models.PropertyStatusAvailable,
		features: Features{},
		media:    MediaList{},
	}
}

// EditPropertyForm starts an edit form from an existing property.
func EditPropertyForm(p *models.Property) *PropertyForm {
	f := &PropertyForm{
		id:          p.ID,
		title:       p.Title,
		categoryID:  p.CategoryID,
		price:       NumberInput(p.Price),
		location:    p.Location,
		description: p.Description,
		agentID:     p.AgentID,
		status:      p.Status,
		features:    append(Features{}, p.Features...),
		media:       append(MediaList{}, p.Media...),
	}
	if p.Deposit != nil {
		f.deposit = NumberInput(*p.Deposit)
	}
	return f
}

func (f *PropertyForm) Editing() bool {
	return f.id != ""
}

func (f *PropertyForm) ID() string {
	return f.id
}

// Apply stages the given values.
func (f *PropertyForm) Apply(in PropertyInput) {
	if in.Title != nil {
		f.title = *in.Title
	}
	if in.CategoryID != nil {
		f.categoryID = *in.CategoryID
	}
	if in.Price != nil {
		f.price = *in.Price
	}
	if in.Deposit != nil {
		f.deposit = *in.Deposit
	}
	if in.Location != nil {
		f.location = *in.Location
	}
	if in.Description != nil {
		f.description = *in.Description
	}
	if in.AgentID != nil {
		f.agentID = *in.AgentID
	}
	if in.Status != nil {
		f.status = *in.Status
	}
	if in.Features != nil {
		f.features = Features{}
		for _, feature := range in.Features {
			// Blank entries are dropped, the same as adding them one by one.
			_ = f.features.Add(feature)
		}
	}
	if in.Media != nil {
		f.media = append(MediaList{}, in.Media...)
	}
}

func (f *PropertyForm) AddFeature(feature string) error {
	return f.features.Add(feature)
}

func (f *PropertyForm) RemoveFeature(index int) error {
	return f.features.Remove(index)
}

func (f *PropertyForm) AppendMedia(items ...models.MediaItem) {
	f.media.Append(items...)
}

func (f *PropertyForm) RemoveMedia(index int) error {
	return f.media.Remove(index)
}

func (f *PropertyForm) Features() []string {
	return append([]string{}, f.features...)
}

func (f *PropertyForm) Media() []models.MediaItem {
	return append([]models.MediaItem{}, f.media...)
}

func (f *PropertyForm) Status() models.PropertyStatus {
	return f.status
}

// Fields coerces price and deposit to numbers and validates the staged values.
// Conversion problems are reported as *FieldError, rule violations as
// validator.ValidationErrors.
func (f *PropertyForm) Fields() (models.PropertyFields, error) {
	if f.price.Empty() {
		return models.PropertyFields{}, &FieldError{Field: "price", Message: "is required"}
	}
	price, err := f.price.Float()
	if err != nil {
		return models.PropertyFields{}, &FieldError{Field: "price", Message: err.Error()}
	}

	var deposit *float64
	if !f.deposit.Empty() {
		d, err := f.deposit.Float()
		if err != nil {
			return models.PropertyFields{}, &FieldError{Field: "deposit", Message: err.Error()}
		}
		deposit = &d
	}

	fields := models.PropertyFields{
		Title:       strings.TrimSpace(f.title),
		CategoryID:  strings.TrimSpace(f.categoryID),
		Price:       price,
		Deposit:     deposit,
		Location:    strings.TrimSpace(f.location),
		Description: strings.TrimSpace(f.description),
		Features:    f.Features(),
		AgentID:     strings.TrimSpace(f.agentID),
		Status:      f.status,
		Media:       f.Media(),
	}
	if err := utils.ValidateStruct(fields); err != nil {
		return models.PropertyFields{}, err
	}
	return fields, nil
}
