// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "encoding/json"

// Optional is a JSON field wrapper for partial updates. It records whether
// the field appeared in the payload at all, and if so whether it was an
// explicit null. A zero Optional means the field was absent.
type Optional[T any] struct {
	Value T
	Set   bool // field was present in the payload
	Null  bool // field was present and explicitly null
}

// UnmarshalJSON marks the field as present and decodes the value unless it
// is an explicit null. encoding/json only invokes this for keys that exist
// in the payload, which is what distinguishes absent from null.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Null = true
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
