package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageConflict is returned when a package is registered below an already registered package.
	ErrPackageConflict = zerr.New("package conflicts with a registered parent package")

	// ErrFirstLevelConflict is returned when two first-level packages claim the same path.
	ErrFirstLevelConflict = zerr.New("first-level package conflict")

	// ErrCacheReadFailed is returned when a cache file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cache")

	// ErrCacheDecodeFailed is returned when a cache file cannot be decoded.
	ErrCacheDecodeFailed = zerr.New("failed to decode cache")

	// ErrCacheEncodeFailed is returned when a cache cannot be encoded.
	ErrCacheEncodeFailed = zerr.New("failed to encode cache")

	// ErrCacheWriteFailed is returned when a cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache")

	// ErrConfigNotFound is returned when the manifest file does not exist.
	ErrConfigNotFound = zerr.New("could not find manifest")

	// ErrConfigReadFailed is returned when the manifest cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read manifest")

	// ErrConfigParseFailed is returned when the manifest cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse manifest")

	// ErrInvalidDependency is returned when a manifest declaration is incomplete.
	ErrInvalidDependency = zerr.New("invalid dependency declaration")

	// ErrInvalidExcludePattern is returned when an exclude pattern cannot be compiled.
	ErrInvalidExcludePattern = zerr.New("invalid exclude pattern")

	// ErrLockReadFailed is returned when the lock file cannot be read.
	ErrLockReadFailed = zerr.New("failed to read lock file")

	// ErrLockParseFailed is returned when the lock file cannot be parsed.
	ErrLockParseFailed = zerr.New("failed to parse lock file")

	// ErrLockWriteFailed is returned when the lock file cannot be written.
	ErrLockWriteFailed = zerr.New("failed to write lock file")

	// ErrVersionNotFound is returned when no ref of a repository satisfies the requested version.
	ErrVersionNotFound = zerr.New("no matching version found")

	// ErrInvalidConstraint is returned when a version is neither a ref nor a valid semver constraint.
	ErrInvalidConstraint = zerr.New("invalid version constraint")

	// ErrGitCommandFailed is returned when a git invocation fails.
	ErrGitCommandFailed = zerr.New("git command failed")

	// ErrVendorScanFailed is returned when a vendored package's metadata cannot be read.
	ErrVendorScanFailed = zerr.New("failed to scan vendored package")

	// ErrResolutionFailed is returned when dependency resolution is aborted.
	ErrResolutionFailed = zerr.New("dependency resolution failed")

	// ErrPackageNotFound is returned when no registered package owns a requested path.
	ErrPackageNotFound = zerr.New("package not found")
)
