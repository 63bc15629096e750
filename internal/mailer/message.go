package mailer

import "fmt"

// Message is a plain-text email.
type Message struct {
	To      string
	Subject string
	Body    string
}

const (
	verificationSubject  = "Verify your email"
	passwordResetSubject = "Reset your password"
)

// NewVerificationMessage builds the email sent after signup.
func NewVerificationMessage(to, name, link string) Message {
	return Message{
		To:      to,
		Subject: verificationSubject,
		Body: fmt.Sprintf("Hello %s,\n\nPlease verify your email address by opening the link below:\n\n%s\n\n"+
			"The link expires in one hour. If you did not sign up, you can ignore this email.\n", name, link),
	}
}

// NewPasswordResetMessage builds the email sent by the forgot-password flow.
func NewPasswordResetMessage(to, name, link string) Message {
	return Message{
		To:      to,
		Subject: passwordResetSubject,
		Body: fmt.Sprintf("Hello %s,\n\nA password reset was requested for your account. Open the link below to choose a new password:\n\n%s\n\n"+
			"The link expires in one hour. If you did not request a reset, you can ignore this email.\n", name, link),
	}
}
