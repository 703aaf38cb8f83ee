package engine

import (
	"path"
	"path/filepath"
)

// Handle refers to an asset by its path relative to the asset root. Loading is
// the renderer's job; a Handle is only a name.
type Handle[T any] struct {
	Path string
}

// IsZero reports whether the handle names no asset.
func (h Handle[T]) IsZero() bool {
	return h.Path == ""
}

// Font is the asset type behind Text2D.Font.
type Font struct{}

// AssetServer resolves asset paths against Root.
type AssetServer struct {
	Root string
}

// LoadFont returns a handle for the font at p. The file is not touched.
func (s *AssetServer) LoadFont(p string) Handle[Font] {
	return Handle[Font]{Path: path.Clean(filepath.ToSlash(p))}
}

// Resolve returns the filesystem path for an asset path.
func (s *AssetServer) Resolve(p string) string {
	return filepath.Join(s.Root, filepath.FromSlash(p))
}
