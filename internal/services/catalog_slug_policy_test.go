package services

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Fresh Tomatoes", "fresh-tomatoes"},
		{"  Desi Ghee 1kg ", "desi-ghee-1kg"},
		{"Anwar Ratol (Mango)", "anwar-ratol-mango"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"UPPER", "upper"},
	}

	for _, testCase := range cases {
		if got := Slugify(testCase.in); got != testCase.want {
			t.Fatalf("Slugify(%q) = %q, want %q", testCase.in, got, testCase.want)
		}
	}
}
