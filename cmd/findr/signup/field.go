package signup

import "fmt"

// Field identifies one input of the registration form.
type Field int

const (
	Email Field = iota
	Password
	Username
)

// Fields lists every form field in display order.
var Fields = []Field{Email, Password, Username}

func (f Field) String() string {
	switch f {
	case Email:
		return "email"
	case Password:
		return "password"
	case Username:
		return "username"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

func (f Field) known() bool {
	return f >= Email && f <= Username
}

// ParseField returns the Field named s ("email", "password" or "username").
func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", s)
}
