// Package sqltime holds the DATETIME column type used by the sqlite queries.
// mattn/go-sqlite3 returns declared DATETIME columns as time.Time but
// RETURNING clauses and expressions come back as raw text, so both are accepted.
package sqltime

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is fixed width so stored timestamps compare correctly as text
const Layout = "2006-01-02 15:04:05.000000"

var parseLayouts = []string{
	Layout,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
}

// Time is a nullable UTC timestamp stored as text
type Time struct {
	Time  time.Time
	Valid bool
}

// From wraps t as a valid value
func From(t time.Time) Time {
	return Time{Time: t.UTC(), Valid: true}
}

// FromPtr maps nil to NULL
func FromPtr(t *time.Time) Time {
	if t == nil {
		return Time{}
	}
	return From(*t)
}

// Ptr returns nil for NULL
func (t Time) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Scan implements sql.Scanner
func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v.UTC(), true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	}
	return fmt.Errorf("unsupported timestamp type %T", src)
}

// Value implements driver.Valuer
func (t Time) Value() (driver.Value, error) {
	if !t.Valid {
		return nil, nil
	}
	return t.Time.UTC().Format(Layout), nil
}

func (t *Time) parse(s string) error {
	for _, layout := range parseLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("unparsable timestamp %q", s)
}
