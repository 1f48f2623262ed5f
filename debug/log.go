package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/tagtree/encode"
	"github.com/signadot/tagtree/tag"
)

// render returns the text Logf prints for a: compact SNBT for tags and
// indented JSON for generic maps and slices. Other values are returned
// as they are.
func render(a any) any {
	switch x := a.(type) {
	case *tag.Tag:
		if x == nil {
			return "<nil tag>"
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf, encode.EncodeCompact(true)); err != nil {
			return fmt.Sprintf("[raw *tag.Tag] %+v", *x)
		}
		return buf.String()
	case map[string]any, []any:
		d, err := json.MarshalIndent(x, "   |", "  ")
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(d)
	}
	return a
}

// Logf writes to stderr, rendering its arguments with render.
func Logf(msg string, args ...any) {
	for i := range args {
		args[i] = render(args[i])
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
