package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Hash returns the hex SHA-256 of data. Used to derive a content hash for
// documents fed into the keyers.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey hashes a stage name, a document hash, and the stage options into a
// stable cache key. Options are serialized as JSON, which is deterministic
// for the flat option structs used here.
func hashKey(stage, docHash string, opts any) string {
	encoded, err := json.Marshal(opts)
	if err != nil {
		// The option structs contain only scalars, so this cannot happen.
		encoded = []byte(fmt.Sprintf("%+v", opts))
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00", stage, docHash)
	h.Write(encoded)
	return hex.EncodeToString(h.Sum(nil))
}
