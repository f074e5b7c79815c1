package domain

// MessageDraft is an outbound message to the currently selected recipients.
// Dispatch is a handoff to the platform's mail client via a mailto URI, not a
// network send.
type MessageDraft struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body"`
}

type ComposeResult struct {
	MailtoURI      string `json:"mailto_uri"`
	RecipientCount int    `json:"recipient_count"`
}

// ContactRequest is the server-side notification variant: a transactional
// email to a single specialist plus a confirmation to the customer.
type ContactRequest struct {
	SpecialistEmail string `json:"specialist_email" binding:"required,email"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	Message         string `json:"message" binding:"required"`
}
