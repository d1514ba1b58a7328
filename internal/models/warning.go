// ABOUTME: Warning model for advisory findings raised during conversion.
// ABOUTME: Warnings are collected and reported, they never abort a run.

package models

import "fmt"

type Warning struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func NewWarning(row int, field, value, message string) Warning {
	return Warning{
		Row:     row,
		Field:   field,
		Value:   value,
		Message: message,
	}
}

func (w Warning) String() string {
	return fmt.Sprintf("Row %d: %s", w.Row, w.Message)
}
