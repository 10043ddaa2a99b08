package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ReadListValue normalizes the several encodings a list-valued field can
// arrive in:
//
//   - a native list is returned as-is (non-string items stringified)
//   - a string is first tried as JSON; a decoded scalar number is wrapped
//     into a single-element list
//   - on JSON failure the string is split on commas if it contains any,
//     else treated as a single item
//
// Any other value yields an empty list.
func ReadListValue(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			items = append(items, stringify(item))
		}
		return items
	case string:
		return readStringList(v)
	default:
		return nil
	}
}

func readStringList(value string) []string {
	dec := json.NewDecoder(bytes.NewReader([]byte(value)))
	dec.UseNumber()
	var decoded any
	if err := dec.Decode(&decoded); err == nil && !dec.More() {
		switch d := decoded.(type) {
		case []any:
			items := make([]string, 0, len(d))
			for _, item := range d {
				items = append(items, stringify(item))
			}
			return items
		case json.Number:
			return []string{d.String()}
		case string:
			return []string{d}
		}
		// Other JSON values (objects, booleans, null) carry no list
		// semantics; fall through to the plain-string handling.
	}
	if strings.Contains(value, ",") {
		return strings.Split(value, ",")
	}
	return []string{value}
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
