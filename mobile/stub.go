//go:build !mobile

// stub.go keeps the package buildable without -tags mobile. The binding
// lives in mobile.go and embed.go.
package mobile

// Dummy is an empty export so the package can be referenced on desktop.
func Dummy() {}
