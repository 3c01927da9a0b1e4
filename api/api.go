// Package api carries the OpenAPI 3 contract of the procurement HTTP interface.
package api

import _ "embed"

// OpenAPI is the contract in YAML form.
//
//go:embed openapi.yaml
var OpenAPI []byte
