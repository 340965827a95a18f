// Package assets embeds the default word list shipped with the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the name of the embedded default word list.
const WordsFile = "words.txt"

// Words opens the embedded default word list.
func Words() (fs.File, error) {
	return FS.Open(WordsFile)
}
