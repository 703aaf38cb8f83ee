package ebitenhost

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plus3/ecsdemos/engine"
)

// fontCache loads font faces lazily by handle path. Missing or unreadable
// files resolve to Go Regular with a single warning per path.
type fontCache struct {
	assets   *engine.AssetServer
	log      *zap.Logger
	sources  map[string]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource
}

func newFontCache(assets *engine.AssetServer, log *zap.Logger) *fontCache {
	return &fontCache{
		assets:  assets,
		log:     log,
		sources: make(map[string]*text.GoTextFaceSource),
	}
}

func (c *fontCache) Get(h engine.Handle[engine.Font]) *text.GoTextFaceSource {
	if h.IsZero() {
		return c.defaultSource()
	}
	if src, ok := c.sources[h.Path]; ok {
		return src
	}

	src, err := c.load(h.Path)
	if err != nil {
		c.log.Warn("font unavailable, using fallback", zap.String("path", h.Path), zap.Error(err))
		src = c.defaultSource()
	}
	c.sources[h.Path] = src
	return src
}

func (c *fontCache) load(path string) (*text.GoTextFaceSource, error) {
	f, err := os.Open(c.assets.Resolve(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return text.NewGoTextFaceSource(f)
}

func (c *fontCache) defaultSource() *text.GoTextFaceSource {
	if c.fallback == nil {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(err)
		}
		c.fallback = src
	}
	return c.fallback
}

// Invalidate drops the cached face for a filesystem path reported by the
// watcher so the next Get reloads it.
func (c *fontCache) Invalidate(file string) {
	for p := range c.sources {
		if filepath.Clean(c.assets.Resolve(p)) == filepath.Clean(file) {
			delete(c.sources, p)
		}
	}
}
