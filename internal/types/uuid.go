package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// ID prefixes for persisted entities
const (
	UUID_PREFIX_TIME_ENTRY      = "ent"
	UUID_PREFIX_DOWNLOAD_RECORD = "dl"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex ent_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
