package importer

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// RowHash derives the dedup identity for a raw CSV row: the md5 of the
// row's values joined in column order. This is an identity key, not a
// security boundary. The input is positional, so reordering export
// columns changes every hash.
func RowHash(fields []string) string {
	sum := md5.Sum([]byte(strings.Join(fields, ",")))
	return hex.EncodeToString(sum[:])
}
