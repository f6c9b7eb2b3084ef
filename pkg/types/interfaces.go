package types

import (
	"io/fs"
)

// FS is the filesystem interface required for a3modlink operations.
// The tool only ever inspects directories and creates or removes
// symlinks.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	Remove(name string) error
	MkdirAll(path string, perm fs.FileMode) error
}
