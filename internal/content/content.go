// Package content bundles the default catalog and game setup so the binary
// runs without any files on disk.
package content

import _ "embed"

// Catalog is the bundled Kanto roster in catalog YAML form.
//
//go:embed pokemon.yaml
var Catalog []byte

// Setup is the bundled gym and item layout in setup YAML form.
//
//go:embed setup.yaml
var Setup []byte
