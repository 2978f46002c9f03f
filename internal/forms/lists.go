// internal/forms/lists.go
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/javajoker/unihub-backend/internal/models"
)

var (
	ErrEmptyFeature    = errors.New("feature must not be empty")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Features is the staged, ordered feature list of a property form.
// Duplicates are allowed.
type Features []string

func (f *Features) Add(feature string) error {
	feature = strings.TrimSpace(feature)
	if feature == "" {
		return ErrEmptyFeature
	}
	*f = append(*f, feature)
	return nil
}

func (f *Features) Remove(index int) error {
	if index < 0 || index >= len(*f) {
		return fmt.Errorf("feature %d: %w", index, ErrIndexOutOfRange)
	}
	*f = append((*f)[:index:index], (*f)[index+1:]...)
	return nil
}

// MediaList is the staged media list of a property form.
type MediaList []models.MediaItem

// Append adds items after the current ones. Order values continue from the
// current length, so earlier removals can leave gaps.
func (m *MediaList) Append(items ...models.MediaItem) {
	base := len(*m)
	for i, item := range items {
		item.Order = base + i
		*m = append(*m, item)
	}
}

// Remove drops the item at index without renumbering the rest.
func (m *MediaList) Remove(index int) error {
	if index < 0 || index >= len(*m) {
		return fmt.Errorf("media %d: %w", index, ErrIndexOutOfRange)
	}
	*m = append((*m)[:index:index], (*m)[index+1:]...)
	return nil
}
