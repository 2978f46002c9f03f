// internal/forms/category.go
package forms

import (
	"regexp"
	"strings"

	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/utils"
)

var nonSlugChars = regexp.MustCompile(`[^\w-]+`)

// Slugify lowercases name, turns spaces into hyphens and drops any other
// character that is not a letter, digit, underscore or hyphen.
func Slugify(name string) string {
	slug := strings.ReplaceAll(strings.ToLower(name), " ", "-")
	return nonSlugChars.ReplaceAllString(slug, "")
}

// CategoryForm stages a category. The slug follows the name only while
// creating; once the category exists its slug never changes.
type CategoryForm struct {
	id       string
	name     string
	slug     string
	isActive bool
	order    int
}

func NewCategoryForm() *CategoryForm {
	return &CategoryForm{isActive: true}
}

func EditCategoryForm(c *models.Category) *CategoryForm {
	return &CategoryForm{
		id:       c.ID,
		name:     c.Name,
		slug:     c.Slug,
		isActive: c.IsActive,
		order:    c.Order,
	}
}

func (f *CategoryForm) Editing() bool {
	return f.id != ""
}

func (f *CategoryForm) SetName(name string) {
	f.name = name
	if !f.Editing() {
		f.slug = Slugify(name)
	}
}

func (f *CategoryForm) SetActive(active bool) {
	f.isActive = active
}

func (f *CategoryForm) SetOrder(order int) {
	f.order = order
}

func (f *CategoryForm) Slug() string {
	return f.slug
}

func (f *CategoryForm) staged() (models.Category, error) {
	c := models.Category{
		ID:       f.id,
		Name:     strings.TrimSpace(f.name),
		Slug:     f.slug,
		IsActive: f.isActive,
		Order:    f.order,
	}
	if err := utils.ValidateStruct(c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

// Category returns the category to create.
func (f *CategoryForm) Category() (models.Category, error) {
	return f.staged()
}

// Update returns the changes to an existing category. The slug is never part of it.
func (f *CategoryForm) Update() (models.CategoryUpdate, error) {
	c, err := f.staged()
	if err != nil {
		return models.CategoryUpdate{}, err
	}
	return models.CategoryUpdate{Name: &c.Name, IsActive: &c.IsActive, Order: &c.Order}, nil
}
