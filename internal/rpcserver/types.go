package rpcserver

import (
	"fmt"

	"github.com/styleexpr/exprlang/internal/etypes"
)

// parseExpectedType maps the request's expected_type string onto the
// handful of root types a style expression is ever checked against.
func parseExpectedType(name string) (etypes.Type, error) {
	switch name {
	case "", "value":
		return etypes.ValueType, nil
	case "number":
		return etypes.Number, nil
	case "string":
		return etypes.String, nil
	case "boolean":
		return etypes.Boolean, nil
	case "color":
		return etypes.Color, nil
	case "object":
		return etypes.Object, nil
	default:
		return nil, fmt.Errorf("unknown expected_type %q", name)
	}
}
