package util

import (
	"strings"

	"github.com/google/uuid"
)

// NewShareToken returns a 64-hex-character token built from two random UUIDs
// with the hyphens stripped. The token is the sole authorization for public
// presentation access, so it must come from a CSPRNG and never be derived
// from the application, candidate or time.
func NewShareToken() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
