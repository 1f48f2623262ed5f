package indexed

import (
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tagmap"
)

// WritePayload writes a single optional payload. An empty payload is
// written as an empty compound when emptyAsCompound is set, and as nil
// otherwise.
func WritePayload(p tagmap.Serializer, empty, emptyAsCompound bool) (*tag.Tag, error) {
	if empty {
		if emptyAsCompound {
			return tag.NewCompound(), nil
		}
		return nil, nil
	}
	return tagmap.ToTag(p)
}

// ReadPayload reads a single optional payload into dst, reporting false
// when t is nil or an empty compound and dst was left untouched.
func ReadPayload(t *tag.Tag, dst tagmap.Deserializer) (bool, error) {
	if t == nil || (t.Type == tag.CompoundType && t.IsEmpty()) {
		return false, nil
	}
	if _, err := tagmap.FromTagInto(t, dst); err != nil {
		return false, err
	}
	return true, nil
}
