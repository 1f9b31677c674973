package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// EntityKey is the key of one normalized entity within an organization.
func EntityKey(orgID, typename, id string) string {
	return fmt.Sprintf(entityKeyFormat, orgID, typename, id)
}

// ListKey is the key of one list page. filterKey is hashed to keep keys short.
func ListKey(orgID, typename, filterKey string) string {
	sum := sha256.Sum256([]byte(filterKey))
	return fmt.Sprintf(listKeyFormat, orgID, typename, hex.EncodeToString(sum[:])[:filterHashLength])
}

// ListIndexKey is the set holding every list key of typename in an organization.
func ListIndexKey(orgID, typename string) string {
	return fmt.Sprintf(listIndexFormat, orgID, typename)
}
