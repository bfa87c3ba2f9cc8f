package guest

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyFirstName = errors.New("first name is required")
	ErrEmptyLastName  = errors.New("last name is required")
	ErrEmptyEmail     = errors.New("email is required")
	ErrInvalidEmail   = errors.New("invalid email format")
	ErrEmptyPhone     = errors.New("phone number is required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Guest is immutable after creation; the booking flow inserts one guest per
// submission and never updates it.
type Guest struct {
	id        int64
	firstName string
	lastName  string
	email     string
	phone     string
}

func New(firstName, lastName, email, phone string) (*Guest, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	switch {
	case firstName == "":
		return nil, ErrEmptyFirstName
	case lastName == "":
		return nil, ErrEmptyLastName
	case email == "":
		return nil, ErrEmptyEmail
	case !emailPattern.MatchString(email):
		return nil, ErrInvalidEmail
	case phone == "":
		return nil, ErrEmptyPhone
	}

	return &Guest{
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
	}, nil
}

func Reconstruct(id int64, firstName, lastName, email, phone string) *Guest {
	return &Guest{
		id:        id,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
	}
}

func (g *Guest) ID() int64         { return g.id }
func (g *Guest) FirstName() string { return g.firstName }
func (g *Guest) LastName() string  { return g.lastName }
func (g *Guest) Email() string     { return g.email }
func (g *Guest) Phone() string     { return g.phone }

func (g *Guest) FullName() string {
	return g.firstName + " " + g.lastName
}
