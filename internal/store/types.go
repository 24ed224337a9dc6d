// AngelaMos | 2026
// types.go

package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// StringList is a []string persisted as a JSONB array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if b == nil {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(b, (*[]string)(l))
}

func (l StringList) Clone() StringList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}

// Object is a free-form JSON object persisted as JSONB.
type Object map[string]any

func (o Object) Value() (driver.Value, error) {
	if o == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]any(o))
	if err != nil {
		return nil, fmt.Errorf("marshal object: %w", err)
	}
	return string(b), nil
}

func (o *Object) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if b == nil {
		*o = Object{}
		return nil
	}
	return json.Unmarshal(b, (*map[string]any)(o))
}

// Clone copies the top level only; nested values are shared.
func (o Object) Clone() Object {
	if o == nil {
		return nil
	}
	return maps.Clone(o)
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported json source type %T", src)
	}
}
