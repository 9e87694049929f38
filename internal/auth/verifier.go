package auth

import "golang.org/x/crypto/bcrypt"

// Verifier checks a supplied password against the stored credential. The
// interface exists so the legacy plaintext scheme can be swapped for a hashed
// one without touching callers.
type Verifier interface {
	Verify(stored, supplied string) bool
}

// PlainVerifier preserves the legacy contract: exact, case-sensitive match
// against the stored plaintext credential.
type PlainVerifier struct{}

func (PlainVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

// BcryptVerifier treats the stored credential as a bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// HashPassword prepares a credential for storage under the bcrypt scheme.
func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b), err
}

// VerifierFor maps a configured scheme name to its Verifier. Anything other
// than "bcrypt" falls back to the legacy plaintext scheme.
func VerifierFor(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlainVerifier{}
}
