// Package api embeds the OpenAPI description of the HTTP interface.
package api

import (
	_ "embed"
)

// OpenAPI is the OpenAPI 3 document in YAML.
//
//go:embed openapi.yml
var OpenAPI []byte
