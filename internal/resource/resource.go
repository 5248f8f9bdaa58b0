// Package resource loads the static string tables that back the
// configuration screen's option lists and store names.
package resource

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"widgetconfig/internal/errs"
)

//go:embed values.yaml
var defaultValues []byte

type Table struct {
	StringArrays map[string][]string `yaml:"string_arrays"`
	Strings      map[string]string   `yaml:"strings"`
}

func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var t Table
	if err := dec.Decode(&t); err != nil {
		return nil, fmt.Errorf("invalid resource table: %w", err)
	}
	return &t, nil
}

func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read resources %q: %w", path, err)
	}
	t, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Default returns the embedded table. It panics on a broken embed since
// that can only come from a bad build.
func Default() *Table {
	t, err := Load(bytes.NewReader(defaultValues))
	if err != nil {
		panic(err)
	}
	return t
}

// Merge returns a table where entries of o replace entries of t.
func (t *Table) Merge(o *Table) *Table {
	out := &Table{
		StringArrays: make(map[string][]string, len(t.StringArrays)),
		Strings:      make(map[string]string, len(t.Strings)),
	}
	for k, v := range t.StringArrays {
		out.StringArrays[k] = v
	}
	for k, v := range t.Strings {
		out.Strings[k] = v
	}
	if o == nil {
		return out
	}
	for k, v := range o.StringArrays {
		out.StringArrays[k] = v
	}
	for k, v := range o.Strings {
		out.Strings[k] = v
	}
	return out
}

func (t *Table) StringArray(key string) ([]string, error) {
	arr, ok := t.StringArrays[key]
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("string array %q not found", key))
	}
	out := make([]string, len(arr))
	copy(out, arr)
	return out, nil
}

func (t *Table) String(key string) (string, error) {
	s, ok := t.Strings[key]
	if !ok {
		return "", errs.NewNotFoundError(fmt.Sprintf("string %q not found", key))
	}
	return s, nil
}
