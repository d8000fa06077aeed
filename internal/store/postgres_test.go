package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStoreAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sub := testSubmission("jane")
	mock.ExpectExec("INSERT INTO contact_submissions").
		WithArgs(sqlmock.AnyArg(), sub.Timestamp, sub.Name, sub.Email, sub.Subject, sub.Message, sub.Phone).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewPostgresStore(db)
	require.NoError(t, s.Append(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreAppendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO contact_submissions").
		WillReturnError(errors.New("connection refused"))

	s := NewPostgresStore(db)
	err = s.Append(context.Background(), testSubmission("jane"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert submission")
}

func TestPostgresStoreAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	jane := testSubmission("jane")
	bob := testSubmission("bob")
	rows := sqlmock.NewRows([]string{"submitted_at", "name", "email", "subject", "message", "phone"}).
		AddRow(jane.Timestamp, jane.Name, jane.Email, jane.Subject, jane.Message, jane.Phone).
		AddRow(bob.Timestamp, bob.Name, bob.Email, bob.Subject, bob.Message, bob.Phone)

	mock.ExpectQuery("SELECT submitted_at, name, email, subject, message, phone").
		WillReturnRows(rows)

	s := NewPostgresStore(db)
	subs, err := s.All(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "jane", subs[0].Name)
	assert.Equal(t, "bob", subs[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
