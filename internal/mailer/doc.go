// Package mailer builds and delivers the account emails: address
// verification and password reset.
//
// Delivery goes through a [Sender]. [NewSender] returns an SMTP sender when
// an SMTP host is configured and a logging sender otherwise, so development
// setups work without a mail server.
package mailer
