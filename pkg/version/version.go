package version

// BinaryName is the name of the binary, overridable at build time.
var BinaryName = "cluster-mcp-server"

// Version is set at build time via -ldflags.
var Version = "0.0.0-dev"
