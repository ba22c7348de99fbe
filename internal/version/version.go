package version

// Version is the release version stamped into --version output. It can
// be overridden at build time with -ldflags "-X fastaparser/internal/version.Version=...".
var Version = "0.1.0"
