package catalog

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// fingerprint hashes the canonical JSON form of defs. encoding/json writes
// struct fields in declaration order, so equal definitions hash equally.
func fingerprint(defs model.Definitions) (string, error) {
	data, err := json.Marshal(defs)
	if err != nil {
		return "", fmt.Errorf("encoding definitions: %w", err)
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:8]), nil
}
