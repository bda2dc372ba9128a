package services

import "testing"

func TestSanitizeInputStripsMarkupFragments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"angle brackets", "<script>hi</script>", "scripthi/script"},
		{"javascript scheme", "JavaScript:alert(1)", "alert(1)"},
		{"inline handler", `img onerror=alert(1)`, "img alert(1)"},
		{"whitespace", "  Jo  ", "Jo"},
		{"plain text untouched", "Flat 4, Shah Rukn-e-Alam", "Flat 4, Shah Rukn-e-Alam"},
	}

	for _, testCase := range cases {
		if got := SanitizeInput(testCase.in); got != testCase.want {
			t.Fatalf("%s: SanitizeInput(%q) = %q, want %q", testCase.name, testCase.in, got, testCase.want)
		}
	}
}

func TestNormalizeEmailLowercases(t *testing.T) {
	t.Parallel()

	if got := NormalizeEmail(" A@B.Com "); got != "a@b.com" {
		t.Fatalf("NormalizeEmail = %q, want %q", got, "a@b.com")
	}
}
