package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/catalog"
	"github.com/giygas/entresto-info/theme"
)

// Export writes a static copy of the viewer into dir: index.html for the
// first tab, one <slug>.html per tab, and the drug image when present.
// It returns the written file names.
func Export(c *catalog.Catalog, cfg theme.Config, dir string, mode theme.Mode, img asset.Image) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	var written []string

	if img.Present {
		if err := copyFile(img.Path, filepath.Join(dir, img.Name)); err != nil {
			return nil, fmt.Errorf("failed to copy image: %w", err)
		}
		written = append(written, img.Name)
	}

	r, err := New(c, cfg, WithTabHref(StaticTabHref), WithImageURL(img.Name))
	if err != nil {
		return nil, err
	}

	pages := []struct {
		file string
		slug string
	}{
		{file: "index.html"},
	}
	for _, tab := range c.Tabs() {
		pages = append(pages, struct {
			file string
			slug string
		}{file: tab.Slug + ".html", slug: tab.Slug})
	}

	for _, p := range pages {
		if err := writePage(r, filepath.Join(dir, p.file), Request{Tab: p.slug, Mode: mode, Image: img}); err != nil {
			return nil, err
		}
		written = append(written, p.file)
	}

	return written, nil
}

func writePage(r *Renderer, path string, req Request) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := r.Render(f, req); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func copyFile(src, dst string) error {
	if same, err := samePath(src, dst); err == nil && same {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	return absA == absB, nil
}
