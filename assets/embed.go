package assets

import (
	"embed"
	"io/fs"
)

// WordList is the name of the built-in word list inside FS.
const WordList = "words.txt"

//go:embed words.txt
var FS embed.FS

// OpenWordList opens the built-in word list for reading.
func OpenWordList() (fs.File, error) {
	return FS.Open(WordList)
}
