// Package assets embeds the GNOME Shell theme sources.
package assets

import (
	"embed"
	"io/fs"
)

// all: keeps the underscore-prefixed SCSS partials.
//
//go:embed all:shell
var shell embed.FS

// ShellSource returns the theme source tree, one directory per supported
// shell major version.
func ShellSource() fs.FS {
	sub, err := fs.Sub(shell, "shell")
	if err != nil {
		panic(err)
	}
	return sub
}
