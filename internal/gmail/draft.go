package gmail

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Draft is a fully addressed reply awaiting storage in the user's drafts.
// It carries the plain fields; Encode produces the raw payload the Gmail
// drafts endpoint expects.
type Draft struct {
	To      string
	From    string
	Subject string
	Body    string
}

// NewReplyDraft builds a reply draft for the given original subject.
// "Re: " is always prepended, even when the subject already carries a
// reply prefix ("Re: Re: …" is accepted, not collapsed).
func NewReplyDraft(from, to, subject, body string) Draft {
	return Draft{
		To:      to,
		From:    from,
		Subject: "Re: " + subject,
		Body:    body,
	}
}

// Encode renders the draft as a base64url-encoded RFC 2822 message,
// the opaque format Users.Drafts.Create takes in its raw field.
func (d Draft) Encode() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "To: %s\r\n", d.To)
	fmt.Fprintf(&sb, "From: %s\r\n", d.From)
	fmt.Fprintf(&sb, "Subject: %s\r\n", d.Subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(d.Body)
	return base64.URLEncoding.EncodeToString([]byte(sb.String()))
}

// DecodeRaw parses an encoded payload back into a Draft. It only handles
// payloads Encode built, so the header block is split by hand rather than
// through net/mail: textproto trims trailing whitespace from header values,
// which would corrupt the "Re: " subject of a reply to an empty subject.
func DecodeRaw(raw string) (Draft, error) {
	data, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		return Draft{}, fmt.Errorf("decode raw payload: %w", err)
	}
	head, body, found := strings.Cut(string(data), "\r\n\r\n")
	if !found {
		return Draft{}, fmt.Errorf("parse raw payload: missing header separator")
	}
	d := Draft{Body: body}
	for _, line := range strings.Split(head, "\r\n") {
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch name {
		case "To":
			d.To = value
		case "From":
			d.From = value
		case "Subject":
			d.Subject = value
		}
	}
	return d, nil
}
