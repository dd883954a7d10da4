package crypto

import (
	"crypto/rand"
	"math/big"
)

// AlphanumericAlphabet is the default alphabet for random identifiers.
const AlphanumericAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a cryptographically secure random string of the given
// length built from the given alphabet. It panics on an empty alphabet or a
// failing system randomness source, both of which are programmer errors.
func RandomString(length int, alphabet string) string {
	if alphabet == "" {
		panic("crypto: empty alphabet")
	}

	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}
