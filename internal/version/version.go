package version

// Version is overridden at build time with -ldflags "-X practicals/internal/version.Version=...".
var Version = "dev"
