// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// stringList stores a string slice as a JSON array column. A NULL column
// scans into an empty, non-nil slice.
type stringList []string

// Value implements driver.Valuer.
func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *stringList) Scan(src any) error {
	raw, err := rawJSON(src)
	if err != nil {
		return err
	}
	out := make([]string, 0)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
	}
	*l = out
	return nil
}

// jsonColumn stores any JSON-encodable value in a single column.
// Valid is false when the column is NULL.
type jsonColumn[T any] struct {
	V     T
	Valid bool
}

// Value implements driver.Valuer.
func (c jsonColumn[T]) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}
	b, err := json.Marshal(c.V)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (c *jsonColumn[T]) Scan(src any) error {
	raw, err := rawJSON(src)
	if err != nil {
		return err
	}
	var v T
	if len(raw) == 0 {
		c.V, c.Valid = v, false
		return nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	c.V, c.Valid = v, true
	return nil
}

func rawJSON(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported source type %T", ErrEncodingColumn, src)
	}
}
