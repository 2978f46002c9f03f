// internal/forms/numeric.go
package forms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumericInput holds the raw value of a numeric form control. It accepts a
// JSON number or a JSON string and is only converted on submission.
type NumericInput struct {
	raw string
}

func NumberInput(v float64) NumericInput {
	return NumericInput{raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

func TextInput(s string) NumericInput {
	return NumericInput{raw: s}
}

func (n *NumericInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		n.raw = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.raw = s
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number or numeric string: %w", err)
	}
	n.raw = num.String()
	return nil
}

func (n NumericInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.raw)
}

func (n NumericInput) Empty() bool {
	return strings.TrimSpace(n.raw) == ""
}

// Float converts the staged text. Blank input is reported by Empty, not here.
func (n NumericInput) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", n.raw)
	}
	return v, nil
}
