// internal/version/version.go
package version

// Version is overridden at build time via -ldflags "-X assayfilter/internal/version.Version=...".
var Version = "0.4.1"
