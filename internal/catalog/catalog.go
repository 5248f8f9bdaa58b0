// Package catalog pairs display labels with internal values for one
// selectable option list.
package catalog

import (
	"fmt"

	"widgetconfig/internal/errs"
	"widgetconfig/internal/resource"
)

type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// OptionCatalog is immutable once built. Accessors hand out copies.
type OptionCatalog struct {
	labels []string
	values []string
}

func New(labels, values []string) (*OptionCatalog, error) {
	if len(labels) != len(values) {
		return nil, errs.NewIntegrityError(fmt.Sprintf(
			"catalog labels/values length mismatch: %d != %d", len(labels), len(values)))
	}
	c := &OptionCatalog{
		labels: make([]string, len(labels)),
		values: make([]string, len(values)),
	}
	copy(c.labels, labels)
	copy(c.values, values)
	return c, nil
}

// Load reads a label array and a value array from the resource table.
func Load(t *resource.Table, labelsKey, valuesKey string) (*OptionCatalog, error) {
	labels, err := t.StringArray(labelsKey)
	if err != nil {
		return nil, errs.NewIntegrityError(err.Error())
	}
	values, err := t.StringArray(valuesKey)
	if err != nil {
		return nil, errs.NewIntegrityError(err.Error())
	}
	c, err := New(labels, values)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", labelsKey, valuesKey, err)
	}
	return c, nil
}

// Truncate keeps the first n entries by position.
func (c *OptionCatalog) Truncate(n int) (*OptionCatalog, error) {
	if c.Len() < n {
		return nil, errs.NewIntegrityError(fmt.Sprintf(
			"catalog has %d entries, need at least %d", c.Len(), n))
	}
	return New(c.labels[:n], c.values[:n])
}

func (c *OptionCatalog) Len() int {
	return len(c.values)
}

func (c *OptionCatalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func (c *OptionCatalog) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

func (c *OptionCatalog) Options() []Option {
	out := make([]Option, len(c.values))
	for i := range c.values {
		out[i] = Option{Label: c.labels[i], Value: c.values[i]}
	}
	return out
}

// IndexOf returns -1 when value is not part of the catalog.
func (c *OptionCatalog) IndexOf(value string) int {
	for i, v := range c.values {
		if v == value {
			return i
		}
	}
	return -1
}

func (c *OptionCatalog) Contains(value string) bool {
	return c.IndexOf(value) >= 0
}

func (c *OptionCatalog) LabelOf(value string) (string, bool) {
	if i := c.IndexOf(value); i >= 0 {
		return c.labels[i], true
	}
	return "", false
}
