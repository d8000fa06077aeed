package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/azzaconstruction/contact-backend/internal/models"
)

type fakeStore struct {
	subs      []models.Submission
	appendErr error
	allErr    error
}

func (f *fakeStore) Append(_ context.Context, sub models.Submission) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeStore) All(_ context.Context) ([]models.Submission, error) {
	if f.allErr != nil {
		return nil, f.allErr
	}
	return f.subs, nil
}

func (f *fakeStore) Close() error { return nil }

type fakeNotifier struct {
	err   error
	calls int
	last  models.Submission
}

func (f *fakeNotifier) NotifySubmission(_ context.Context, sub models.Submission) error {
	f.calls++
	f.last = sub
	return f.err
}

func validRequest() models.ContactRequest {
	return models.ContactRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Quote",
		Message: "Need a quote",
		Phone:   "555-0100",
	}
}

func newTestService(st *fakeStore, n *fakeNotifier) *ContactService {
	return NewContactService(st, n, zap.NewNop())
}

func TestSubmitHappyPath(t *testing.T) {
	st := &fakeStore{}
	n := &fakeNotifier{}
	svc := newTestService(st, n)

	require.NoError(t, svc.Submit(context.Background(), validRequest()))

	require.Len(t, st.subs, 1)
	assert.Equal(t, "Jane", st.subs[0].Name)
	assert.Equal(t, 1, n.calls)
	assert.Equal(t, "Quote", n.last.Subject)
}

func TestSubmitValidationFailure(t *testing.T) {
	st := &fakeStore{}
	n := &fakeNotifier{}
	svc := newTestService(st, n)

	req := validRequest()
	req.Subject = ""
	err := svc.Submit(context.Background(), req)

	var missing *models.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, st.subs, "nothing may be stored on validation failure")
	assert.Zero(t, n.calls, "no email may be sent on validation failure")
}

func TestSubmitStoreFailure(t *testing.T) {
	st := &fakeStore{appendErr: errors.New("file not writable")}
	n := &fakeNotifier{}
	svc := newTestService(st, n)

	err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.Zero(t, n.calls, "a record failure must not trigger email")
}

func TestSubmitNotifyFailureKeepsRow(t *testing.T) {
	st := &fakeStore{}
	n := &fakeNotifier{err: errors.New("relay down")}
	svc := newTestService(st, n)

	err := svc.Submit(context.Background(), validRequest())
	require.Error(t, err, "a notification failure fails the whole request")
	assert.Len(t, st.subs, 1, "the already-persisted row is kept")
}

func TestSubmitNotIdempotent(t *testing.T) {
	st := &fakeStore{}
	svc := newTestService(st, &fakeNotifier{})

	require.NoError(t, svc.Submit(context.Background(), validRequest()))
	require.NoError(t, svc.Submit(context.Background(), validRequest()))
	assert.Len(t, st.subs, 2)
}

func TestExportEmpty(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeNotifier{})

	_, err := svc.Export(context.Background())
	assert.ErrorIs(t, err, ErrNoSubmissions)
}

func TestExportRoundTrip(t *testing.T) {
	st := &fakeStore{}
	svc := newTestService(st, &fakeNotifier{})

	first := validRequest()
	second := validRequest()
	second.Name = "Bob"
	second.Phone = ""
	require.NoError(t, svc.Submit(context.Background(), first))
	require.NoError(t, svc.Submit(context.Background(), second))

	data, err := svc.Export(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per submission")
	assert.Equal(t, models.Columns, rows[0])
	assert.Equal(t, "Jane", rows[1][1])
	assert.Equal(t, "Bob", rows[2][1])
	assert.Equal(t, models.PhoneNotProvided, rows[2][5])
}
