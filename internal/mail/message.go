// Package mail composes and sends the transactional emails of the trip
// planner: the owner confirmation, the invitation, and the per-participant
// confirmation request. Sending goes through an SMTP client; composition
// is plain html/template.
package mail

// Address is a named email address.
type Address struct {
	Name  string
	Email string
}

// Attachment is an inline attachment embedded in an HTML body.
// The filename doubles as the Content-ID, so a body referencing
// cid:logo.png embeds the attachment named logo.png.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a fully composed email, ready to hand to a sender.
// The workflow engine builds Messages via the compose functions in this
// package and never touches SMTP details itself.
type Message struct {
	From        Address
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}
