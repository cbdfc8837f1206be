package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a staff password. An out-of-range cost falls back to
// the bcrypt default rather than erroring, so a misconfigured AUTH_BCRYPT_COST
// cannot lock out account creation.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
