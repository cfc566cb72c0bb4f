package unityforge

// Version is the bridge version reported to MCP clients and the CLI.
// Overridden at build time via -ldflags.
var Version = "0.4.0"
