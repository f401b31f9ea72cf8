package version

// Set at build time with
// -ldflags "-X github.com/ChristianF88/radixsort/version.Version=... -X github.com/ChristianF88/radixsort/version.Date=..."
var (
	Version = "dev"
	Date    = ""
)
