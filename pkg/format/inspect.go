package format

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/davecgh/go-spew/spew"
)

// maxElements caps how many collection elements the compact representation
// prints before eliding the rest.
const maxElements = 25

// inspectState is the shared spew configuration for compact inspection:
// single-line via Sprintf, stable map ordering, bounded depth and width.
var inspectState = &spew.ConfigState{
	Indent:   " ",
	MaxDepth: 6,
	SortKeys: true,
}

// isPrimitive reports whether v passes through to the sink untouched. Errors
// and plain scalars render fine on their own; everything else benefits from
// the compact form.
func isPrimitive(v any) bool {
	switch v.(type) {
	case nil, string, bool, error,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128:
		return true
	}
	return false
}

// inspect renders a structured value as a single line, eliding collection
// elements past maxElements.
func inspect(v any) string {
	v, omitted := truncate(v)
	s := inspectState.Sprintf("%+v", v)
	if omitted > 0 {
		s += fmt.Sprintf(" …(+%d more)", omitted)
	}
	return s
}

// truncate caps top-level slices and maps at maxElements, reporting how many
// elements were dropped. Other kinds pass through unchanged.
func truncate(v any) (any, int) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() > maxElements {
			return rv.Slice(0, maxElements).Interface(), rv.Len() - maxElements
		}
	case reflect.Map:
		if rv.Len() > maxElements {
			keys := rv.MapKeys()
			sort.Slice(keys, func(i, j int) bool {
				return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
			})
			out := reflect.MakeMapWithSize(rv.Type(), maxElements)
			for _, k := range keys[:maxElements] {
				out.SetMapIndex(k, rv.MapIndex(k))
			}
			return out.Interface(), rv.Len() - maxElements
		}
	}
	return v, 0
}
