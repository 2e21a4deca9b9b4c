package info

var (
	// Version should be set at compile time to `git describe --tags --abbrev=0`
	Version string
	// BinaryName should be set on init in order to know what binary is using the flags library.
	BinaryName string
	// PortalName The name used for the archive's metadata API in messages to the user.
	PortalName = "ENA Portal API"
)
