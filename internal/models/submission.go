package models

import (
	"fmt"
	"strings"
	"time"
)

// PhoneNotProvided is stored in the phone column when the submitter left it blank.
const PhoneNotProvided = "Not provided"

// Columns is the header row of the submissions sheet, in storage order.
var Columns = []string{"timestamp", "name", "email", "subject", "message", "phone"}

// ContactRequest represents the request to submit the contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Phone   string `json:"phone,omitempty"`
}

// Submission is one validated contact-form entry. Once appended to the store
// it is never read back, updated or deleted by the request path.
type Submission struct {
	Timestamp time.Time
	Name      string
	Email     string
	Subject   string
	Message   string
	Phone     string
}

// MissingFieldError reports the first required field found empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q is missing", e.Field)
}

// Validate checks the four required fields and returns a normalized Submission
// with a server-side timestamp and the phone sentinel applied. It has no side
// effects; nothing is persisted here.
func (r ContactRequest) Validate() (Submission, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"subject", r.Subject},
		{"message", r.Message},
	} {
		if strings.TrimSpace(field.value) == "" {
			return Submission{}, &MissingFieldError{Field: field.name}
		}
	}

	phone := strings.TrimSpace(r.Phone)
	if phone == "" {
		phone = PhoneNotProvided
	}

	return Submission{
		Timestamp: time.Now().UTC(),
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		Phone:     phone,
	}, nil
}

// Row returns the submission as one sheet row in Columns order.
// Timestamps are stored as ISO-8601 text.
func (s Submission) Row() []string {
	return []string{
		s.Timestamp.Format(time.RFC3339),
		s.Name,
		s.Email,
		s.Subject,
		s.Message,
		s.Phone,
	}
}

// FromRow rebuilds a Submission from a stored sheet row. Short rows are
// tolerated (trailing empty cells are dropped by some spreadsheet readers).
func FromRow(row []string) Submission {
	get := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	ts, _ := time.Parse(time.RFC3339, get(0))
	return Submission{
		Timestamp: ts,
		Name:      get(1),
		Email:     get(2),
		Subject:   get(3),
		Message:   get(4),
		Phone:     get(5),
	}
}
