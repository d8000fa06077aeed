package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/azzaconstruction/contact-backend/internal/models"
	"github.com/azzaconstruction/contact-backend/internal/store"
)

// ErrNoSubmissions is returned by Export when the store holds no rows yet.
var ErrNoSubmissions = errors.New("no submissions stored")

// pipelineTimeout bounds one request's record+notify sequence. The source had
// no timeouts on its network calls; this is deliberate hardening.
const pipelineTimeout = 30 * time.Second

// Notifier dispatches the notification emails for one recorded submission.
type Notifier interface {
	NotifySubmission(ctx context.Context, sub models.Submission) error
}

// ContactService runs the validate → record → notify pipeline. Each request is
// strictly sequential: a record failure means no email is attempted.
type ContactService struct {
	store    store.Store
	notifier Notifier
	logger   *zap.Logger
}

func NewContactService(st store.Store, notifier Notifier, logger *zap.Logger) *ContactService {
	return &ContactService{store: st, notifier: notifier, logger: logger}
}

// Submit validates the request, appends one row and sends the notification
// emails. A *models.MissingFieldError means the caller is at fault; any other
// error is a server-side storage or mail failure.
//
// A notification failure after a successful append still fails the whole
// request (matching the source), but the row is kept and the partial success
// is logged so operators can see the data survived.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest) error {
	sub, err := req.Validate()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, pipelineTimeout)
	defer cancel()

	if err := s.store.Append(ctx, sub); err != nil {
		s.logger.Error("failed to record submission",
			zap.String("email", sub.Email),
			zap.Error(err))
		return fmt.Errorf("record submission: %w", err)
	}

	if err := s.notifier.NotifySubmission(ctx, sub); err != nil {
		s.logger.Warn("submission stored but notification failed",
			zap.String("email", sub.Email),
			zap.String("subject", sub.Subject),
			zap.Error(err))
		return fmt.Errorf("send notification: %w", err)
	}

	s.logger.Info("submission processed",
		zap.String("email", sub.Email),
		zap.String("subject", sub.Subject))
	return nil
}

// Export reads the whole store and re-serializes it into a fresh xlsx
// workbook. No filtering, no pagination.
func (s *ContactService) Export(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, pipelineTimeout)
	defer cancel()

	subs, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("read submissions: %w", err)
	}
	if len(subs) == 0 {
		return nil, ErrNoSubmissions
	}
	return buildWorkbook(subs)
}
