// internal/utils/codes.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateTrackingNumber builds a human-facing order reference: the configured
// store prefix plus a random 4-digit suffix in [1111, 9999]. Collisions are
// not checked; the tracking number is a customer-support handle, not a key.
func GenerateTrackingNumber(prefix string) string {
	n, err := rand.Int(rand.Reader, big.NewInt(9999-1111+1))
	if err != nil {
		return prefix + "0000"
	}
	return fmt.Sprintf("%s%d", prefix, n.Int64()+1111)
}
