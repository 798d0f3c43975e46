package models

// ContactForm is the body forwarded to the form endpoint
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionStatus is the outcome of a finished submission. While the
// request is running the form is submitting, which the caller observes as
// the request being in flight.
type SubmissionStatus string

const (
	StatusSuccess SubmissionStatus = "success"
	StatusError   SubmissionStatus = "error"
)

// SubmissionResult is the outcome of a single submission attempt
type SubmissionResult struct {
	Status  SubmissionStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}
