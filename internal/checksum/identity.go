package checksum

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceWorkbookIdentity is the UUID namespace for workbook identities,
// derived from "labschema/workbook-identity/v1" under the standard URL namespace.
var NamespaceWorkbookIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("labschema/workbook-identity/v1"))

// Identity creates a deterministic UUID v5 from a normalized checksum.
// Workbooks with the same cell content get the same identity, so results can
// be compared across runs without diffing them.
func Identity(normalizedChecksum string) uuid.UUID {
	return uuid.NewSHA1(NamespaceWorkbookIdentity, []byte(strings.ToLower(normalizedChecksum)))
}
