package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// ShareTokenBytes is the entropy behind every custom test share token.
const ShareTokenBytes = 32

// NewID returns the identifier stored in every document's "id" field.
func NewID() string {
	return uuid.NewString()
}

// NewShareToken returns a URL-safe random token (43 chars for 32 bytes).
func NewShareToken() (string, error) {
	buf := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Slugify lowercases, transliterates to ASCII and hyphen-joins name.
func Slugify(name string) string {
	return slug.Make(name)
}

// Now is UTC truncated to the store's millisecond precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
