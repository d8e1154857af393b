// SPDX-License-Identifier: Apache-2.0

package schema

import "encoding/json"

// TypedParameters pairs a structured smart contract parameter value with
// the schema needed to serialize it. Typed parameters accompany contract
// init and update transactions only, and only when the parameter is
// non-empty; the pairing rules are enforced where transactions are
// submitted.
type TypedParameters struct {
	// Parameters is the structured parameter value. It must marshal to
	// JSON; the concrete wallet protocol serializes it using Schema.
	Parameters any
	// Schema describes how Parameters is serialized for the chain.
	Schema Schema
}

// NewTypedParameters pairs a parameter value with its schema.
func NewTypedParameters(parameters any, s Schema) TypedParameters {
	return TypedParameters{Parameters: parameters, Schema: s}
}

// Empty reports whether the parameter value is absent or has no content.
// A nil value, empty string, empty map and empty slice all count as empty.
func (p TypedParameters) Empty() bool {
	switch v := p.Parameters.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	case json.RawMessage:
		return len(v) == 0 || string(v) == "null"
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
