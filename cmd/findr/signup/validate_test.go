package signup

import "testing"

func TestValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.c", true},
		{"a@b.co", true},
		{"first.last@example.org", true},
		{"a@b.c.d", true},
		{"a@b", false},
		{"", false},
		{"@b.c", false},
		{"a@.c", false},
		{"a@b.", false},
		{"ab.c", false},
		{"a@b\n.c", false},
	}
	for _, c := range cases {
		if got := ValidEmail(c.in); got != c.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidPassword(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"short", false},
		{"longer", true},
		{"abcdefghijkl", true},
		{"      ", true},
		{"héllo", false},
		{"héllo!", true},
	}
	for _, c := range cases {
		if got := ValidPassword(c.in); got != c.want {
			t.Errorf("ValidPassword(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidUsername(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user_1", true},
		{"ab_1", true},
		{"_", true},
		{"ABC", true},
		{"", false},
		{"user!", false},
		{"bad name", false},
		{"émile", false},
		{"user\n", false},
	}
	for _, c := range cases {
		if got := ValidUsername(c.in); got != c.want {
			t.Errorf("ValidUsername(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValid_DispatchesPerField(t *testing.T) {
	if !Valid(Email, "a@b.c") || Valid(Email, "a@b") {
		t.Error("email predicate not applied")
	}
	if !Valid(Password, "longer") || Valid(Password, "short") {
		t.Error("password predicate not applied")
	}
	if !Valid(Username, "user_1") || Valid(Username, "user!") {
		t.Error("username predicate not applied")
	}
	if Valid(Field(42), "anything") {
		t.Error("unknown field must never be valid")
	}
}

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		if err != nil {
			t.Fatalf("ParseField(%q): %v", f.String(), err)
		}
		if got != f {
			t.Errorf("ParseField(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if _, err := ParseField("phone"); err == nil {
		t.Error("expected error for unknown field name")
	}
}
