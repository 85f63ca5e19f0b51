package domain

import "path/filepath"

const (
	// PinDirName is the name of the internal workspace directory.
	PinDirName = ".pin"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// VersionCacheFileName is the file holding version-to-commit lookups.
	VersionCacheFileName = "versions.json"

	// ScanCacheFileName is the file holding transitive scan results.
	ScanCacheFileName = "scans.json"

	// ManifestFileName is the name of the project manifest.
	ManifestFileName = "pin.yaml"

	// LockFileName is the name of the lock file written next to the manifest.
	LockFileName = "pin.lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default cache directory.
// It joins .pin and cache.
func DefaultCachePath() string {
	return filepath.Join(PinDirName, CacheDirName)
}

// DefaultVersionCachePath returns the default path of the version cache file.
func DefaultVersionCachePath() string {
	return filepath.Join(DefaultCachePath(), VersionCacheFileName)
}

// DefaultScanCachePath returns the default path of the scan cache file.
func DefaultScanCachePath() string {
	return filepath.Join(DefaultCachePath(), ScanCacheFileName)
}

// LockPathFor returns the lock file path that belongs to the manifest at manifestPath.
func LockPathFor(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), LockFileName)
}
