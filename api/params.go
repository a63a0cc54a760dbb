package api

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/google/go-querystring/query"
)

// Params is the loose form of query parameters. Nil values are dropped.
type Params map[string]any

// EncodeParams serializes params into a query string without the leading
// "?". params may be any map keyed by strings or a struct with `url` tags.
// Keys come out sorted so the result is stable.
func EncodeParams(params any) (string, error) {
	if isNil(params) {
		return "", nil
	}

	switch p := params.(type) {
	case Params:
		return encodeMap(p), nil
	case map[string]any:
		return encodeMap(p), nil
	case url.Values:
		return encodeValues(p), nil
	}

	// any other map keyed by strings, e.g. map[string]int
	if rv := reflect.ValueOf(params); rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return encodeMap(m), nil
	}

	values, err := query.Values(params)
	if err != nil {
		return "", fmt.Errorf("error encoding params: %v", err)
	}
	return encodeValues(values), nil
}

func encodeMap(p map[string]any) string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if isNil(v) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, escape(k)+"="+escape(stringify(p[k])))
	}
	return strings.Join(parts, "&")
}

func encodeValues(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		for _, v := range values[k] {
			parts = append(parts, escape(k)+"="+escape(v))
		}
	}
	return strings.Join(parts, "&")
}

// stringify renders a value the way the backend expects it in a query:
// pointers are followed and slices are joined with commas.
func stringify(v any) string {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = fmt.Sprint(rv.Index(i).Interface())
		}
		return strings.Join(items, ",")
	}
	return fmt.Sprint(rv.Interface())
}

// escape percent-encodes a query component, spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
