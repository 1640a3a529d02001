package appointment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrEmptyCustomerPhone  = errors.New("customer phone cannot be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long (max 255 characters)")
	ErrNoServices          = errors.New("at least one service is required")
	ErrInvalidDuration     = errors.New("service duration must be positive")
)

const MaxCustomerNameLength = 255

type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}
	if len(name) > MaxCustomerNameLength {
		return Customer{}, ErrCustomerNameTooLong
	}
	if phone == "" {
		return Customer{}, ErrEmptyCustomerPhone
	}
	return Customer{name: name, phone: phone, email: strings.TrimSpace(email)}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

type ServiceLine struct {
	ServiceID       uuid.UUID
	DurationMinutes int
}

// Services is the ordered list of services booked as one contiguous block.
type Services []ServiceLine

func NewServices(lines ...ServiceLine) (Services, error) {
	if len(lines) == 0 {
		return nil, ErrNoServices
	}
	for _, l := range lines {
		if l.DurationMinutes <= 0 {
			return nil, ErrInvalidDuration
		}
	}
	return Services(lines), nil
}

func (s Services) TotalDuration() int {
	total := 0
	for _, l := range s {
		total += l.DurationMinutes
	}
	return total
}

func (s Services) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s))
	for i, l := range s {
		ids[i] = l.ServiceID
	}
	return ids
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
