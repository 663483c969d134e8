package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Well known files inside a content tree.
const (
	ReadsFile    = "reads.yaml"
	LabFile      = "lab.yaml"
	GalleryFile  = "gallery.yaml"
	SiteFile     = "site.yaml"
	WritingsDir  = "writings"
	BooksDir     = "books"
	markdownExt  = ".md"
	maxBodyBytes = 1 << 20
)

type siteFile struct {
	Quotes []string `yaml:"quotes"`
	Links  []Link   `yaml:"links"`
}

// Load reads every catalog from fsys and validates the result. Markdown
// directories are read in file name order, so prefix names to control order.
func Load(fsys fs.FS) (*Library, error) {
	lib := &Library{}
	var err error

	if lib.Reads, err = readYAML[Entry](fsys, ReadsFile); err != nil {
		return nil, err
	}
	if lib.Experiments, err = readYAML[Entry](fsys, LabFile); err != nil {
		return nil, err
	}
	if lib.Gallery, err = readYAML[GalleryItem](fsys, GalleryFile); err != nil {
		return nil, err
	}
	if lib.Writings, err = readWritings(fsys); err != nil {
		return nil, err
	}
	if lib.Books, err = readBooks(fsys); err != nil {
		return nil, err
	}

	site := siteFile{}
	if data, err := fs.ReadFile(fsys, SiteFile); err == nil {
		if err := yaml.Unmarshal(data, &site); err != nil {
			return nil, fmt.Errorf("content: decode %s: %w", SiteFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("content: read %s: %w", SiteFile, err)
	}
	lib.Quotes = site.Quotes
	lib.Links = site.Links

	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// readYAML decodes a top-level YAML sequence. A missing file is an empty catalog.
func readYAML[T any](fsys fs.FS, name string) ([]T, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", name, err)
	}
	var out []T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("content: decode %s: %w", name, err)
	}
	return out, nil
}

func readWritings(fsys fs.FS) ([]Entry, error) {
	var out []Entry
	err := walkMarkdown(fsys, WritingsDir, func(name string, data []byte) error {
		e := Entry{}
		body, err := frontmatter.Parse(bytes.NewReader(data), &e)
		if err != nil {
			return fmt.Errorf("content: parse %s: %w", name, err)
		}
		e.Content = strings.TrimSpace(string(body))
		if e.ID == "" {
			e.ID = idFromName(name)
		}
		out = append(out, e)
		return nil
	})
	return out, err
}

func readBooks(fsys fs.FS) ([]Book, error) {
	var out []Book
	err := walkMarkdown(fsys, BooksDir, func(name string, data []byte) error {
		b := Book{}
		body, err := frontmatter.Parse(bytes.NewReader(data), &b)
		if err != nil {
			return fmt.Errorf("content: parse %s: %w", name, err)
		}
		b.Reflection = strings.TrimSpace(string(body))
		if b.ID == "" {
			b.ID = idFromName(name)
		}
		if b.Tags == nil {
			b.Tags = []string{}
		}
		out = append(out, b)
		return nil
	})
	return out, err
}

func walkMarkdown(fsys fs.FS, dir string, fn func(name string, data []byte) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("content: list %s: %w", dir, err)
	}
	for _, de := range entries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), markdownExt) {
			continue
		}
		name := path.Join(dir, de.Name())
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("content: read %s: %w", name, err)
		}
		if len(data) > maxBodyBytes {
			return fmt.Errorf("content: %s exceeds %d bytes", name, maxBodyBytes)
		}
		if err := fn(name, data); err != nil {
			return err
		}
	}
	return nil
}

// idFromName turns "writings/01-brutalist-web.md" into "brutalist-web".
func idFromName(name string) string {
	base := strings.TrimSuffix(path.Base(name), markdownExt)
	if i := strings.IndexByte(base, '-'); i > 0 && isDigits(base[:i]) {
		base = base[i+1:]
	}
	return base
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
