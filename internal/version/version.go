package version

// Build information. These variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/mj1618/nc-clear/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
