// embed.go declares the embedded resources. It must sit at the module root,
// next to data/, because //go:embed only reaches files below the declaring
// package.
package main

import "embed"

//go:embed data/scene.yaml data/presets
var dataFS embed.FS
