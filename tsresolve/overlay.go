package tsresolve

import (
	"io/fs"
	"strings"
	"time"

	"github.com/microsoft/typescript-go/shim/bundled"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// virtualFS layers in-memory source buffers over a base filesystem. The
// entry source (and any caller-supplied extra files) live only in memory
// under fixed identifiers; every other name falls through to the base, which
// is how imports of real dependency files resolve when the traversal is
// allowed to follow them.
type virtualFS struct {
	fs    vfs.FS
	files map[string]string
}

var _ vfs.FS = (*virtualFS)(nil)

// newVirtualFS builds a virtualFS over the bundled OS filesystem (which
// includes the default TypeScript lib files). Keys in files must be
// normalized absolute paths.
func newVirtualFS(files map[string]string) vfs.FS {
	base := bundled.WrapFS(cachedvfs.From(osvfs.FS()))
	return &virtualFS{fs: base, files: files}
}

func (v *virtualFS) UseCaseSensitiveFileNames() bool {
	return v.fs.UseCaseSensitiveFileNames()
}

func (v *virtualFS) FileExists(path string) bool {
	if _, ok := v.files[path]; ok {
		return true
	}
	return v.fs.FileExists(path)
}

func (v *virtualFS) ReadFile(path string) (contents string, ok bool) {
	if src, ok := v.files[path]; ok {
		return src, true
	}
	return v.fs.ReadFile(path)
}

func (v *virtualFS) DirectoryExists(path string) bool {
	prefix := dirPrefix(path)
	for name := range v.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return v.fs.DirectoryExists(path)
}

func (v *virtualFS) GetAccessibleEntries(path string) (result vfs.Entries) {
	result = v.fs.GetAccessibleEntries(path)

	prefix := dirPrefix(path)
	for name := range v.files {
		rest, found := strings.CutPrefix(name, prefix)
		if !found {
			continue
		}
		if dir, _, nested := strings.Cut(rest, "/"); nested {
			result.Directories = append(result.Directories, dir)
		} else {
			result.Files = append(result.Files, rest)
		}
	}
	return result
}

func dirPrefix(path string) string {
	normalized := tspath.NormalizePath(path)
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}
	return normalized
}

type virtualFileInfo struct {
	name string
	size int64
}

var (
	_ fs.FileInfo = (*virtualFileInfo)(nil)
	_ fs.DirEntry = (*virtualFileInfo)(nil)
)

func (fi *virtualFileInfo) IsDir() bool                { return false }
func (fi *virtualFileInfo) ModTime() time.Time         { return time.Time{} }
func (fi *virtualFileInfo) Mode() fs.FileMode          { return 0 }
func (fi *virtualFileInfo) Name() string               { return fi.name }
func (fi *virtualFileInfo) Size() int64                { return fi.size }
func (fi *virtualFileInfo) Sys() any                   { return nil }
func (fi *virtualFileInfo) Info() (fs.FileInfo, error) { return fi, nil }
func (fi *virtualFileInfo) Type() fs.FileMode          { return 0 }

func (v *virtualFS) Stat(path string) vfs.FileInfo {
	if src, ok := v.files[path]; ok {
		return &virtualFileInfo{name: path, size: int64(len(src))}
	}
	return v.fs.Stat(path)
}

func (v *virtualFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	return v.fs.WalkDir(root, walkFn)
}

func (v *virtualFS) Realpath(path string) string {
	if _, ok := v.files[path]; ok {
		return path
	}
	return v.fs.Realpath(path)
}

// The in-memory buffers are read-only for the resolution session.

func (v *virtualFS) WriteFile(path string, data string, writeByteOrderMark bool) error {
	if _, ok := v.files[path]; ok {
		panic("cannot write to virtual source buffer")
	}
	return v.fs.WriteFile(path, data, writeByteOrderMark)
}

func (v *virtualFS) Remove(path string) error {
	if _, ok := v.files[path]; ok {
		panic("cannot remove virtual source buffer")
	}
	return v.fs.Remove(path)
}

func (v *virtualFS) Chtimes(path string, aTime time.Time, mTime time.Time) error {
	if _, ok := v.files[path]; ok {
		panic("cannot change times on virtual source buffer")
	}
	return v.fs.Chtimes(path, aTime, mTime)
}
