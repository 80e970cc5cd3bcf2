package entities

// Attachment is a file attached to an outgoing email.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// EmailMessage is the payload handed to the email-delivery collaborator.
type EmailMessage struct {
	To          string
	ReplyTo     string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}
