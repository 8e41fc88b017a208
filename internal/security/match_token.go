package security

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// MatchTokenGenerator produces the per-side confirmation tokens attached to
// a match at creation time. Tokens are permanent bearer capabilities; the
// only requirement is exact-match lookup by either field.
type MatchTokenGenerator interface {
	NewToken() string
}

type uuidTokenGenerator struct{}

func NewMatchTokenGenerator() MatchTokenGenerator {
	return uuidTokenGenerator{}
}

func (uuidTokenGenerator) NewToken() string {
	return uuid.NewString()
}

// GenerateTempPassword returns a random password handed to newly registered
// users along with their confirmation email.
func GenerateTempPassword() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}
