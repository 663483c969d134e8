// Package show prints one record in quick or full form.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/catalog/detail"
)

// DefaultWidth is the reading measure.
const DefaultWidth = 72

// Show prints a record.
type Show struct {
	Service *app.Service
	Catalog string
	ID      string
	// Quick prints the summary only.
	Quick bool
	JSON  bool
	Width int
	Out   io.Writer
}

// Do looks up the record and prints it.
func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no content")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	width := s.Width
	if width <= 0 {
		width = DefaultWidth
	}

	d, err := s.Service.Record(ctx, s.Catalog, s.ID)
	if err != nil {
		return err
	}
	if s.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if s.Quick {
			return enc.Encode(d.Summary)
		}
		return enc.Encode(d)
	}
	if s.Quick {
		printSummary(out, d.Summary, width)
		return nil
	}
	printDocument(out, d.Document, width)
	return nil
}

func printSummary(out io.Writer, sum detail.Summary, width int) {
	kicker := color.New(color.FgRed, color.Bold)
	faint := color.New(color.Faint)

	_, _ = kicker.Fprint(out, strings.ToUpper(sum.Kicker))
	if sum.Date != "" {
		_, _ = faint.Fprintf(out, "  %s", sum.Date)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = color.New(color.Bold).Fprintln(out, strings.ToUpper(sum.Title))
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, indent.String(wordwrap.String(sum.Description, width-2), 2))
	if sum.Link != "" {
		_, _ = fmt.Fprintln(out)
		_, _ = faint.Fprint(out, "↗ ")
		_, _ = fmt.Fprintln(out, sum.Link)
	}
}

func printDocument(out io.Writer, doc detail.Document, width int) {
	faint := color.New(color.Faint)
	accent := color.New(color.FgRed, color.Bold)

	if len(doc.Meta) > 0 {
		_, _ = faint.Fprintln(out, wordwrap.String(strings.Join(doc.Meta, "  //  "), width))
		_, _ = fmt.Fprintln(out)
	}
	_, _ = color.New(color.Bold).Fprintln(out, wordwrap.String(strings.ToUpper(doc.Title), width))
	if len(doc.Tags) > 0 {
		tags := make([]string, len(doc.Tags))
		for i, t := range doc.Tags {
			tags[i] = "#" + t
		}
		_, _ = accent.Fprintln(out, wordwrap.String(strings.Join(tags, " "), width))
	}
	_, _ = fmt.Fprintln(out)

	paragraphs := doc.Paragraphs()
	initial, _ := detail.DropCap(paragraphs)
	for i, p := range paragraphs {
		wrapped := wordwrap.String(p, width)
		if i == 0 && initial != "" {
			_, _ = accent.Fprint(out, initial)
			wrapped = strings.TrimPrefix(wrapped, initial)
		}
		_, _ = fmt.Fprintln(out, wrapped)
		_, _ = fmt.Fprintln(out)
	}
	if doc.Link != "" {
		_, _ = faint.Fprint(out, "SOURCE  ")
		_, _ = fmt.Fprintln(out, doc.Link)
	}
	_, _ = faint.Fprintln(out, "// END OF FILE")
}
