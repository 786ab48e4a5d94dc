package version

// Version represents the current version of hub
const Version = "0.3.0"

// BuildVersion returns the version string for display
func BuildVersion() string {
	return "hub version " + Version
}
