// Package ranking describes the ranked vehicle records shown by the carousel
// and the sources that can supply them.
package ranking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// StatusSuccess is the only status value treated as a successful retrieval.
const StatusSuccess = "success"

// Item is a single ranked vehicle.
type Item struct {
	ID       string `json:"vehicle_id" yaml:"vehicle_id" validate:"required"`
	Category string `json:"body_type" yaml:"body_type" validate:"required,notblank"`
	Make     string `json:"make" yaml:"make"`
	Model    string `json:"model" yaml:"model"`
	Price    Price  `json:"price" yaml:"price"`
}

// Title joins the make and model for display.
func (i Item) Title() string {
	return strings.TrimSpace(strings.TrimSpace(i.Make) + " " + strings.TrimSpace(i.Model))
}

// Price holds a display price. Payloads may carry it as a string or a number.
type Price string

// UnmarshalJSON accepts both quoted and bare numeric prices.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Price(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(n.String())
	return nil
}

// Display formats the price for a card or listing.
func (p Price) Display() string {
	price := strings.TrimSpace(string(p))
	if price == "" {
		return "price on request"
	}
	if strings.HasPrefix(price, "$") {
		return price
	}
	return "$" + price
}

// Result is the envelope returned by the retrieval service.
type Result struct {
	Status  string `json:"status" yaml:"status"`
	Data    []Item `json:"data,omitempty" yaml:"data,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// OK reports whether the envelope signals success.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// StatusError is returned when the service answers with a non-success status.
type StatusError struct {
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = "(empty)"
	}
	if e.Message == "" {
		return fmt.Sprintf("ranking service returned status %s", status)
	}
	return fmt.Sprintf("ranking service returned status %s: %s", status, e.Message)
}
