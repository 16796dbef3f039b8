// Package models defines the client-side data records: the authenticated
// User, the one-shot RegistrationRequest and the editable Profile.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the calendar-date form accepted for birth dates.
const DateLayout = "2006-01-02"

// Date is a calendar date. It marshals as an RFC 3339 UTC timestamp, the
// form the backend and the persisted @user record use, and unmarshals either
// that or a bare YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate returns the date y-m-d at UTC midnight.
func NewDate(y int, m time.Month, d int) Date {
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format("2006-01-02T15:04:05.000Z07:00"))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = Date{t.UTC()}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q", s)
	}
	*d = Date{t}
	return nil
}

// User is an authenticated account as returned by the backend.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
	FirstName   string `json:"nombre"`
	LastName    string `json:"apellido"`
	DateOfBirth Date   `json:"fechaNacimiento"`
	NationalID  string `json:"DNI"`
}

// Valid reports whether u carries the identifier and email every stored
// user must have.
func (u User) Valid() bool {
	return u.ID != "" && u.Email != ""
}

// WithAvatar returns a copy of u whose avatar reference is url.
func (u User) WithAvatar(url string) User {
	u.AvatarURL = url
	return u
}

// DisplayName is "FirstName LastName", falling back to Username.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Username
	}
}
