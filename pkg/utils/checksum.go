package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Checksum gera a impressão digital de um upload
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}
