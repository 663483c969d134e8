// Package check validates a content tree, optionally on every change.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/catalog"
	"tableflip.dev/folio/pkg/content"
)

// Check loads and validates content.
type Check struct {
	// FS is checked when Dir is empty.
	FS fs.FS
	// Dir is an authoring directory; required by Watch.
	Dir    string
	Watch  bool
	Settle time.Duration
	Log    zerolog.Logger
	Out    io.Writer
}

// Do validates once, then keeps validating after each change when Watch is set.
func (c *Check) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	err := c.once(out)
	if !c.Watch {
		return err
	}
	if c.Dir == "" {
		return errors.New("--watch needs a content directory")
	}

	changes, werr := content.Watch(ctx, c.Dir, c.Settle)
	if werr != nil {
		return werr
	}
	_, _ = color.New(color.Faint).Fprintf(out, "watching %s\n", c.Dir)
	for change := range changes {
		if change.Err != nil {
			c.Log.Warn().Err(change.Err).Msg("watcher error")
			continue
		}
		c.Log.Debug().Strs("files", change.Files).Msg("content changed")
		_, _ = color.New(color.Faint).Fprintf(out, "\nchanged: %s\n", strings.Join(change.Files, ", "))
		_ = c.once(out)
	}
	return nil
}

func (c *Check) fsys() fs.FS {
	if c.Dir != "" {
		return os.DirFS(c.Dir)
	}
	return c.FS
}

func (c *Check) once(out io.Writer) error {
	fsys := c.fsys()
	if fsys == nil {
		return errors.New("can not check, no content")
	}
	lib, err := content.Load(fsys)
	if err != nil {
		bad := color.New(color.FgRed)
		_, _ = bad.Fprintln(out, "✗ content is invalid")
		for _, line := range strings.Split(err.Error(), "\n") {
			_, _ = fmt.Fprintf(out, "  %s\n", line)
		}
		return err
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("CATALOG"), bold.Sprint("RECORDS"), bold.Sprint("FACETS"))
	set := catalog.NewSet(lib)
	for _, info := range set.Infos() {
		cat, _ := set.Lookup(info.Name)
		tbl.AddRow(info.Name, info.Total, len(cat.Facets())-1)
	}
	tbl.AddRow("quotes", len(lib.Quotes), "")
	tbl.AddRow("links", len(lib.Links), "")
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = color.New(color.FgGreen).Fprintln(out, "✓ content is valid")
	return nil
}
