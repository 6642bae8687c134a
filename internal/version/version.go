// internal/version/version.go
package version

// Version is overridden at release time via -ldflags "-X".
var Version = "0.1.0-dev"
