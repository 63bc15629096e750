package mailer

import "errors"

var (
	ErrInvalidSender    = errors.New("invalid sender address")
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrDeliveryFailed   = errors.New("email delivery failed")
)
