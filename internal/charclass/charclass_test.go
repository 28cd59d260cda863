package charclass

import "testing"

func TestIs(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want bool
	}{
		{"alpha", 'a', true},
		{"alpha", 'Z', true},
		{"alpha", 'é', true},
		{"alpha", '5', false},
		{"digit", '5', true},
		{"digit", 'a', false},
		{"alnum", 'a', true},
		{"alnum", '5', true},
		{"alnum", '_', false},
		{"blank", ' ', true},
		{"blank", '\t', true},
		{"blank", '\n', false},
		{"cntrl", '\x07', true},
		{"cntrl", 'a', false},
		{"space", '\n', true},
		{"space", 'a', false},
		{"lower", 'a', true},
		{"lower", 'A', false},
		{"upper", 'A', true},
		{"upper", 'a', false},
		{"punct", '.', true},
		{"punct", '+', true},
		{"punct", 'a', false},
		{"graph", 'a', true},
		{"graph", ' ', false},
		{"print", ' ', true},
		{"print", '\x07', false},
		{"xdigit", 'f', true},
		{"xdigit", 'F', true},
		{"xdigit", '9', true},
		{"xdigit", 'g', false},
	}
	for _, c := range cases {
		if got := Is(c.name, c.r); got != c.want {
			t.Errorf("Is(%q, %q) = %v, want %v", c.name, c.r, got, c.want)
		}
	}
}

func TestIsUnknownClass(t *testing.T) {
	if Is("nosuch", 'a') {
		t.Error("Is(\"nosuch\", 'a') = true, want false")
	}
	if Is("", 'a') {
		t.Error("Is(\"\", 'a') = true, want false")
	}
}
