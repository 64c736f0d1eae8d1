//go:build mobile

// embed.go declares the mobile resources. It is only compiled with
// -tags mobile, after data/ has been copied into this directory.
package mobile

import "embed"

//go:embed data/scene.yaml data/presets
var dataFS embed.FS
