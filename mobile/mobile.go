//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// It builds the Android (.aar) and iOS (.xcframework) packages and is only
// compiled with -tags mobile. The data/ directory must be copied next to
// this file first:
//
//	cp -r ../data ./data
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.lily -o build/android/lily.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Lily.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/lily/pkg/app"
	"github.com/decker502/lily/pkg/embedded"
)

func init() {
	// dataFS is declared in embed.go.
	embedded.Init(dataFS)

	sceneApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("scene init failed: %v", err)
	}

	mobile.SetGame(sceneApp)
}

// Dummy is an empty export so ebitenmobile recognises the package.
func Dummy() {}
