// Package jsonutil holds small JSON decoding helpers shared by the handlers.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexInt decodes a JSON number or a string holding a base-10 integer. Browser
// forms often submit select values as strings.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("flexint: %q is not an integer", s)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// Int64Ptr converts an optional FlexInt, keeping nil as nil.
func Int64Ptr(f *FlexInt) *int64 {
	if f == nil {
		return nil
	}
	v := int64(*f)
	return &v
}
