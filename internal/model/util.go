package model

import "path/filepath"

// Under joins a slash separated path onto root. Absolute paths are returned
// cleaned and unchanged.
func Under(root Path, rel string) Path {
	native := filepath.FromSlash(rel)
	if filepath.IsAbs(native) {
		return Path(filepath.Clean(native))
	}

	return Path(filepath.Join(string(root), native))
}
