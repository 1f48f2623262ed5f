package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/tagtree/format"
	"github.com/signadot/tagtree/tag"
	"github.com/signadot/tagtree/tagmap"
)

// Export writes t in format f. SNBT goes through Encode; JSON and YAML
// write the plain view from tagmap.ToAny, losing number variants.
func Export(t *tag.Tag, w io.Writer, f format.Format, opts ...EncodeOption) error {
	if t == nil {
		return fmt.Errorf("%w: export of nil tag", tag.ErrInvalidArgument)
	}
	switch {
	case f.IsSNBT():
		return Encode(t, w, opts...)
	case f.IsJSON():
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(exportView(tagmap.ToAny(t)))
	case f.IsYAML():
		d, err := yaml.Marshal(exportView(tagmap.ToAny(t)))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, f)
}

// exportView replaces byte arrays with int lists, so that JSON and YAML
// show the values rather than base64.
func exportView(v any) any {
	switch x := v.(type) {
	case []byte:
		res := make([]int, len(x))
		for i, b := range x {
			res[i] = int(int8(b))
		}
		return res
	case []any:
		for i := range x {
			x[i] = exportView(x[i])
		}
		return x
	case map[string]any:
		for k := range x {
			x[k] = exportView(x[k])
		}
		return x
	}
	return v
}
