package users

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const MaxFieldLength = 255

// User is a directory record. ID is the durable identity used for all
// ownership and reference checks; Login is the human-chosen sign-in handle.
type User struct {
	ID               string
	Login            string
	FirstName        string
	LastName         string
	HashPassword     string
	RegistrationDate time.Time
}

func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UpdateData holds a partial profile mutation as supplied by the client.
// Nil fields were not sent and must stay untouched.
type UpdateData struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Password  *string `json:"password"`
}

func (d *UpdateData) Empty() bool {
	return d.FirstName == nil && d.LastName == nil && d.Password == nil
}

// Fields returns the names of the supplied fields, in a fixed order, for
// echoing back which changes were applied.
func (d *UpdateData) Fields() []string {
	fields := make([]string, 0, 3)

	if d.FirstName != nil {
		fields = append(fields, "firstName")
	}

	if d.LastName != nil {
		fields = append(fields, "lastName")
	}

	if d.Password != nil {
		fields = append(fields, "password")
	}

	return fields
}

func (d *UpdateData) Validate() error {
	if d.FirstName != nil {
		if err := ValidateField("firstName", *d.FirstName); err != nil {
			return err
		}
	}

	if d.LastName != nil {
		if err := ValidateField("lastName", *d.LastName); err != nil {
			return err
		}
	}

	if d.Password != nil {
		if err := ValidatePassword(*d.Password); err != nil {
			return err
		}
	}

	return nil
}

func ValidateField(name, value string) error {
	if value == "" {
		return fmt.Errorf("field '%s' must not be empty", name)
	}

	if utf8.RuneCountInString(value) > MaxFieldLength {
		return fmt.Errorf("field '%s' must not be longer than %d characters", name, MaxFieldLength)
	}

	return nil
}

// MaxPasswordLength matches the bcrypt input limit.
const MaxPasswordLength = 72

func ValidatePassword(value string) error {
	if value == "" {
		return fmt.Errorf("field 'password' must not be empty")
	}

	if len(value) > MaxPasswordLength {
		return fmt.Errorf("field 'password' must not be longer than %d bytes", MaxPasswordLength)
	}

	return nil
}

// Update is the store-level form of a partial mutation: the password has
// already been hashed by the time it reaches the store.
type Update struct {
	FirstName    *string
	LastName     *string
	HashPassword *string
}
