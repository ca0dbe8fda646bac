package order

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrContactIsNotConstructed is returned when a Contact instance was not
// created through the NewContact factory method.
var ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact constructor")

// Contact is a value object holding the name and phone of a person attached
// to an order: the site contact receiving the concrete, or the supervisor
// approving the pour.
//
// Contact is immutable once constructed.
type Contact struct {
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewContact creates a Contact, requiring both a name and a phone number.
func NewContact(name, phone string) (Contact, error) {
	if name == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact name")
	}
	if phone == "" {
		return Contact{}, errs.NewValueIsRequiredError("contact phone")
	}

	return Contact{
		name:  name,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Contact was created via NewContact.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact person's name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact person's phone number.
func (c Contact) Phone() string {
	return c.phone
}

// IsEqual compares two contacts by name and phone.
func (c Contact) IsEqual(other Contact) bool {
	return c.name == other.name && c.phone == other.phone
}
