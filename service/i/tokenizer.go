package i

import (
	"time"
)

// Tokenizer issues and verifies the bearer tokens that guard maze creation
// and listing.
type Tokenizer interface {
	// Generate signs claims into a token that expires after expTime.
	// Implementations own the "exp" and "iss" claims.
	Generate(claims map[string]interface{}, expTime time.Duration) (string, error)

	// Decode verifies a token and returns its claims.
	Decode(token string) (map[string]interface{}, error)
}
