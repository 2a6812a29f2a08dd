package main

import "encoding/hex"

type sha256SumFunc func([]byte) [32]byte

var sha256Sum sha256SumFunc

// sha256Hex returns the lowercase 64-character hex digest of payload.
func sha256Hex(payload []byte) string {
	sum := sha256Sum(payload)
	return hex.EncodeToString(sum[:])
}
