package libdiff

import (
	"strconv"

	"github.com/signadot/tagtree/tag"
)

// keyString renders a leaf used as a list element key. Integers of every
// width render as plain digits, so an index stored as Short matches one
// stored as Int.
func keyString(t *tag.Tag) string {
	switch t.Type {
	case tag.ByteType:
		return strconv.FormatInt(int64(t.Byte), 10)
	case tag.ShortType:
		return strconv.FormatInt(int64(t.Short), 10)
	case tag.IntType:
		return strconv.FormatInt(int64(t.Int), 10)
	case tag.LongType:
		return strconv.FormatInt(t.Long, 10)
	case tag.StringType:
		return strconv.Quote(t.String)
	}
	return strconv.FormatUint(t.Hash(), 16)
}
