package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() ContactRequest {
	return ContactRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Quote",
		Message: "Need a quote",
		Phone:   "555-0100",
	}
}

func TestValidateMissingFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*ContactRequest)
	}{
		{"name", func(r *ContactRequest) { r.Name = "" }},
		{"email", func(r *ContactRequest) { r.Email = "" }},
		{"subject", func(r *ContactRequest) { r.Subject = "" }},
		{"message", func(r *ContactRequest) { r.Message = "   " }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := req.Validate()
			require.Error(t, err)

			missing, ok := err.(*MissingFieldError)
			require.True(t, ok, "expected *MissingFieldError, got %T", err)
			assert.Equal(t, tc.field, missing.Field)
		})
	}
}

func TestValidateNormalizes(t *testing.T) {
	before := time.Now().UTC()

	req := validRequest()
	sub, err := req.Validate()
	require.NoError(t, err)

	assert.Equal(t, "Jane", sub.Name)
	assert.Equal(t, "555-0100", sub.Phone)
	assert.False(t, sub.Timestamp.Before(before), "timestamp must not predate the request")
}

func TestValidatePhoneSentinel(t *testing.T) {
	req := validRequest()
	req.Phone = ""

	sub, err := req.Validate()
	require.NoError(t, err)
	assert.Equal(t, PhoneNotProvided, sub.Phone)
}

func TestRowRoundTrip(t *testing.T) {
	sub, err := validRequest().Validate()
	require.NoError(t, err)

	row := sub.Row()
	require.Len(t, row, len(Columns))

	got := FromRow(row)
	assert.Equal(t, sub.Name, got.Name)
	assert.Equal(t, sub.Email, got.Email)
	assert.Equal(t, sub.Subject, got.Subject)
	assert.Equal(t, sub.Message, got.Message)
	assert.Equal(t, sub.Phone, got.Phone)
	assert.True(t, sub.Timestamp.Truncate(time.Second).Equal(got.Timestamp))
}

func TestFromRowShortRow(t *testing.T) {
	got := FromRow([]string{"2025-01-02T03:04:05Z", "Jane"})
	assert.Equal(t, "Jane", got.Name)
	assert.Empty(t, got.Phone)
}
