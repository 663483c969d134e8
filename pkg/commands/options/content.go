package options

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/content/embedded"
)

// ContentOptions selects the content tree.
type ContentOptions struct {
	Dir string
}

// AddContentArgs registers --content.
func AddContentArgs(cmd *cobra.Command, o *ContentOptions) {
	cmd.Flags().StringVar(&o.Dir, "content", "",
		Wrap80("Directory to load content from instead of the built-in content. Overrides the content config key."))
}

// FS returns the directory from the flag or cfg, or the embedded tree.
func (o *ContentOptions) FS(cfg *config.Config) (fs.FS, string) {
	dir := o.Dir
	if dir == "" && cfg != nil {
		dir = cfg.Content
	}
	if dir == "" {
		return embedded.FS(), ""
	}
	return os.DirFS(dir), dir
}

// Load reads and validates the selected content tree.
func (o *ContentOptions) Load(cfg *config.Config) (*content.Library, error) {
	fsys, dir := o.FS(cfg)
	lib, err := content.Load(fsys)
	if err != nil {
		if dir == "" {
			return nil, fmt.Errorf("built-in content: %w", err)
		}
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return lib, nil
}
