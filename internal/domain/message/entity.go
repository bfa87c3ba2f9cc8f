package message

import (
	"errors"
	"regexp"
	"strings"
)

const minBodyLength = 10

var (
	ErrEmptyName    = errors.New("name is required")
	ErrEmptyEmail   = errors.New("email is required")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrBodyTooShort = errors.New("message must be at least 10 characters long")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Message is a contact-form submission shown on the admin dashboard.
type Message struct {
	id    int64
	name  string
	email string
	body  string
}

func New(name, email, body string) (*Message, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case email == "":
		return nil, ErrEmptyEmail
	case !emailPattern.MatchString(email):
		return nil, ErrInvalidEmail
	case len(body) < minBodyLength:
		return nil, ErrBodyTooShort
	}

	return &Message{name: name, email: email, body: body}, nil
}

func (m *Message) ID() int64     { return m.id }
func (m *Message) Name() string  { return m.name }
func (m *Message) Email() string { return m.email }
func (m *Message) Body() string  { return m.body }
