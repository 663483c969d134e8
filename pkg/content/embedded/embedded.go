// Package embedded carries the portfolio content compiled into the binary.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed data
var data embed.FS

// FS returns the content tree rooted at the data directory.
func FS() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		// The directory is part of the embed pattern above.
		panic(err)
	}
	return sub
}
