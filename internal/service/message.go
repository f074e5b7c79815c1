package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"intouch/internal/domain"
	"intouch/internal/i18n"
)

var (
	ErrEmptyMessage = errors.New("message body is empty")
	ErrNoRecipients = errors.New("no recipients selected")
)

type MessageServiceImpl struct {
	notifier Notifier
	logger   *zap.Logger
}

func NewMessageService(notifier Notifier, logger *zap.Logger) *MessageServiceImpl {
	return &MessageServiceImpl{
		notifier: notifier,
		logger:   logger,
	}
}

// Compose validates the draft and builds the mailto URI handed to the
// platform mail client. The recipient list is joined with semicolons and the
// whole list is escaped as a single component; subject and body are escaped
// separately.
func (s *MessageServiceImpl) Compose(draft domain.MessageDraft) (*domain.ComposeResult, error) {
	if strings.TrimSpace(draft.Body) == "" {
		return nil, ErrEmptyMessage
	}
	if len(draft.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	uri := fmt.Sprintf(
		"mailto:%s?subject=%s&body=%s",
		escapeMailtoComponent(strings.Join(draft.Recipients, ";")),
		escapeMailtoComponent(draft.Subject),
		escapeMailtoComponent(draft.Body),
	)

	return &domain.ComposeResult{
		MailtoURI:      uri,
		RecipientCount: len(draft.Recipients),
	}, nil
}

// ContactSpecialist delivers a customer inquiry through the transactional
// email provider: the specialist gets the inquiry, the customer gets a
// confirmation. A failed confirmation does not fail the request once the
// specialist notification went out.
func (s *MessageServiceImpl) ContactSpecialist(ctx context.Context, req domain.ContactRequest, lang i18n.Language) error {
	if strings.TrimSpace(req.Message) == "" {
		return ErrEmptyMessage
	}
	if s.notifier == nil {
		return errors.New("email delivery is not configured")
	}
	if !lang.IsValid() {
		lang = i18n.DefaultLanguage
	}

	subject := i18n.Translate(lang, "newInquirySubject", map[string]string{"name": req.CustomerName})
	body := inquiryHTML(lang, req)

	if err := s.notifier.Send(ctx, req.SpecialistEmail, subject, body); err != nil {
		s.logger.Error("failed to notify specialist",
			zap.String("specialist", req.SpecialistEmail),
			zap.Error(err),
		)
		return errors.New("failed to send inquiry")
	}

	confirmSubject := i18n.Translate(lang, "inquirySentSubject", nil)
	confirmBody := fmt.Sprintf("<p>%s</p>", html.EscapeString(i18n.Translate(lang, "inquirySentBody", nil)))

	if err := s.notifier.Send(ctx, req.CustomerEmail, confirmSubject, confirmBody); err != nil {
		s.logger.Warn("failed to send customer confirmation",
			zap.String("customer", req.CustomerEmail),
			zap.Error(err),
		)
	}

	return nil
}

// escapeMailtoComponent percent-encodes a mailto component. Mail clients do
// not decode '+' as a space, so spaces must come out as %20.
func escapeMailtoComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func inquiryHTML(lang i18n.Language, req domain.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(i18n.Translate(lang, "newInquiryGreeting", nil)) + "</h2>")
	b.WriteString("<p>" + html.EscapeString(i18n.Translate(lang, "newInquiryFrom", map[string]string{"name": req.CustomerName})) + "</p>")
	b.WriteString("<p>" + html.EscapeString(req.CustomerEmail) + "</p>")
	b.WriteString("<blockquote>" + html.EscapeString(req.Message) + "</blockquote>")
	b.WriteString("<p>" + html.EscapeString(i18n.Translate(lang, "newInquiryReplyHint", nil)) + "</p>")
	return b.String()
}
