package security

import "testing"

func TestHashPasswordIsDeterministic(t *testing.T) {
	t.Parallel()

	first := HashPassword("secret1", "server-secret")
	second := HashPassword("secret1", "server-secret")
	if first != second {
		t.Fatalf("expected identical digests, got %q and %q", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64-char hex digest, got %d chars", len(first))
	}
	for _, char := range first {
		if (char < '0' || char > '9') && (char < 'a' || char > 'f') {
			t.Fatalf("expected lowercase hex digest, got %q", first)
		}
	}
}

func TestHashPasswordChangesWithEitherInput(t *testing.T) {
	t.Parallel()

	base := HashPassword("secret1", "server-secret")
	if HashPassword("secret2", "server-secret") == base {
		t.Fatal("expected different digest for different password")
	}
	if HashPassword("secret1", "other-secret") == base {
		t.Fatal("expected different digest for different secret")
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	digest := HashPassword("secret1", "server-secret")
	if !VerifyPassword("secret1", "server-secret", digest) {
		t.Fatal("expected matching password to verify")
	}
	if VerifyPassword("wrong", "server-secret", digest) {
		t.Fatal("expected mismatched password to fail verification")
	}
	if VerifyPassword("secret1", "other-secret", digest) {
		t.Fatal("expected mismatched secret to fail verification")
	}
}
