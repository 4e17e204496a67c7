package services

import (
	"context"
	"fmt"

	"sitecms_backend/internal/email"
	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"

	"gorm.io/gorm"
)

// ContactService stores contact form submissions and notifies the site
// owner about new ones.
type ContactService struct {
	*ContentService[models.ContactSubmission]
	repo   *repositories.ContactRepository
	mailer email.Provider
}

func NewContactService(repo *repositories.ContactRepository, mailer email.Provider) *ContactService {
	if mailer == nil {
		mailer = email.NoopProvider{}
	}
	return &ContactService{
		ContentService: NewContentService(repo.Repository, "contact_submission"),
		repo:           repo,
		mailer:         mailer,
	}
}

// Submit persists the submission. The notification mail is best effort: a
// delivery failure is logged and never fails the request.
func (s *ContactService) Submit(db *gorm.DB, submission *models.ContactSubmission) (*models.ContactSubmission, error) {
	created, err := s.Create(db, submission)
	if err != nil {
		return nil, err
	}

	ctx := ctxOf(db)
	if err := s.notify(ctx, created); err != nil {
		logger.CtxWarn(ctx, "contact notification not sent", "contact_id", created.ID, "error", err.Error())
	}
	return created, nil
}

func (s *ContactService) Unread(db *gorm.DB) ([]models.ContactSubmission, error) {
	items, err := s.repo.GetUnread(db)
	return items, s.dbError(err)
}

func (s *ContactService) MarkRead(db *gorm.DB, id uint) (*models.ContactSubmission, error) {
	submission, err := s.repo.SetRead(db, id, true)
	return s.found(submission, err)
}

func (s *ContactService) MarkUnread(db *gorm.DB, id uint) (*models.ContactSubmission, error) {
	submission, err := s.repo.SetRead(db, id, false)
	return s.found(submission, err)
}

func (s *ContactService) notify(ctx context.Context, c *models.ContactSubmission) error {
	to := s.mailer.Recipient()
	if to == "" {
		return nil
	}

	data := email.TemplateData{
		"Name":     c.Name,
		"Email":    c.Email,
		"Services": []string(c.Services),
		"Message":  c.Message,
	}
	for key, value := range map[string]*string{
		"Phone":       c.Phone,
		"Location":    c.Location,
		"ProjectType": c.ProjectType,
		"Surface":     c.Surface,
	} {
		if value != nil {
			data[key] = *value
		}
	}

	body, err := email.RenderContactNotification(data)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, &email.Email{
		To:       []string{to},
		ReplyTo:  c.Email,
		Subject:  fmt.Sprintf("New contact request from %s", c.Name),
		HTMLBody: body,
	})
}
