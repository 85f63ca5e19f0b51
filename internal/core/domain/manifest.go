package domain

// DefaultVendorDir is the directory holding vendored dependency sources when the manifest does not name one.
const DefaultVendorDir = "vendor"

// Manifest is the parsed project manifest.
type Manifest struct {
	// Version is the manifest format version.
	Version string

	// Vendor is the directory, relative to the manifest, holding dependency sources.
	Vendor string

	// Exclude holds glob patterns for transitive packages that must never be registered.
	Exclude []string

	// Dependencies are the first-level declarations, in manifest order.
	Dependencies []DependencyRequest

	// Hash fingerprints the raw manifest bytes. A lock file is only trusted when it
	// was written for the same hash.
	Hash string
}
