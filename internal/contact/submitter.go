// Package contact forwards contact form submissions to a hosted form endpoint.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"pixelnex.dev/internal/models"
)

// User-facing messages
const (
	MsgRequiredFields = "Please fill in all required fields."
	MsgSuccess        = "Thank you for your message! I'll get back to you soon."
	MsgRemoteFallback = "Oops! There was a problem submitting your form."
	MsgNetworkError   = "Network error. Please check your internet connection."
)

// Submitter posts forms to the endpoint. Each call is a single attempt.
type Submitter struct {
	endpoint string
	client   *http.Client
	policy   *bluemonday.Policy
	logger   *zap.Logger
}

// NewSubmitter creates a Submitter with its own HTTP client
func NewSubmitter(endpoint string, timeout time.Duration, logger *zap.Logger) *Submitter {
	return &Submitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		policy:   bluemonday.StrictPolicy(),
		logger:   logger,
	}
}

type remoteResponse struct {
	Errors []struct {
		Field   string `json:"field,omitempty"`
		Message string `json:"message"`
	} `json:"errors"`
}

// Validate checks that every field has content
func Validate(form models.ContactForm) bool {
	return strings.TrimSpace(form.Name) != "" &&
		strings.TrimSpace(form.Email) != "" &&
		strings.TrimSpace(form.Message) != ""
}

// Submit validates and forwards form. It never returns an error: every
// failure is reported as an error result with a message for the user.
func (s *Submitter) Submit(ctx context.Context, form models.ContactForm) models.SubmissionResult {
	if !Validate(form) {
		return models.SubmissionResult{Status: models.StatusError, Message: MsgRequiredFields}
	}

	body, err := json.Marshal(s.sanitize(form))
	if err != nil {
		s.logger.Error("Failed to encode contact form", zap.Error(err))
		return models.SubmissionResult{Status: models.StatusError, Message: MsgRemoteFallback}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		s.logger.Error("Failed to build contact request", zap.Error(err))
		return models.SubmissionResult{Status: models.StatusError, Message: MsgNetworkError}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("Contact endpoint unreachable", zap.Error(err))
		return models.SubmissionResult{Status: models.StatusError, Message: MsgNetworkError}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		s.logger.Info("Contact form delivered", zap.String("email", form.Email))
		return models.SubmissionResult{Status: models.StatusSuccess, Message: MsgSuccess}
	}

	msg := remoteMessage(resp)
	s.logger.Warn("Contact endpoint rejected form",
		zap.Int("status", resp.StatusCode),
		zap.String("message", msg),
	)
	return models.SubmissionResult{Status: models.StatusError, Message: msg}
}

// remoteMessage joins the endpoint's error messages, or falls back to a
// generic message when the body has none
func remoteMessage(resp *http.Response) string {
	var decoded remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return MsgRemoteFallback
	}

	messages := make([]string, 0, len(decoded.Errors))
	for _, e := range decoded.Errors {
		if e.Message != "" {
			messages = append(messages, e.Message)
		}
	}
	if len(messages) == 0 {
		return MsgRemoteFallback
	}
	return strings.Join(messages, ", ")
}

// sanitize strips markup. The endpoint delivers plain text, so entities the
// policy escaped are turned back into characters.
func (s *Submitter) sanitize(form models.ContactForm) models.ContactForm {
	return models.ContactForm{
		Name:    s.plain(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Message: s.plain(form.Message),
	}
}

func (s *Submitter) plain(text string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(text)))
}
