package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies passwords with bcrypt.
// The cost factor is fixed at construction and shared process-wide.
type Hasher struct {
	cost int
}

// Opt configures a Hasher.
type Opt func(*Hasher)

// WithCost sets the bcrypt cost factor.
func WithCost(cost int) Opt {
	return func(h *Hasher) { h.cost = cost }
}

// New creates a Hasher. Without options it uses bcrypt.DefaultCost.
func New(opts ...Opt) *Hasher {
	h := &Hasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash returns the bcrypt hash of the plaintext. The salt and cost
// are embedded in the returned string.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare reports whether plaintext matches the stored hash.
// A mismatch is not an error, it is simply false.
func (h *Hasher) Compare(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
