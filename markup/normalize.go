package markup

import "reflect"

// Mapper transforms one child before it is inserted.
type Mapper func(any) any

// Normalize flattens input into a flat ordered list. Slices and arrays are
// walked recursively, nil values are dropped, everything else is kept as is
// so that the caller can validate it.
func Normalize(input any) []any {
	var out []any
	flatten(input, &out)
	return out
}

func flatten(v any, out *[]any) {
	switch c := v.(type) {
	case nil:
		return
	case Element, string:
		*out = append(*out, c)
		return
	case []any:
		for _, item := range c {
			flatten(item, out)
		}
		return
	case []Element:
		for _, item := range c {
			*out = append(*out, item)
		}
		return
	case []string:
		for _, item := range c {
			*out = append(*out, item)
		}
		return
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			flatten(rv.Index(i).Interface(), out)
		}
	default:
		*out = append(*out, v)
	}
}

// MapEach applies fn to every item. A nil fn returns items unchanged.
func MapEach(items []any, fn Mapper) []any {
	if fn == nil {
		return items
	}
	mapped := make([]any, len(items))
	for i, item := range items {
		mapped[i] = fn(item)
	}
	return mapped
}
