package cmd

import (
	"strings"

	"github.com/MelisaYasak/mail-procurement/pkg/persistence"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence/file"
	"github.com/MelisaYasak/mail-procurement/pkg/persistence/memory"
)

// NewArchive builds the completed-workflow archive for the given URL.
// "memory://" keeps everything in process; anything else is treated as a
// file root, with an optional "file://" prefix.
func NewArchive(archiveURL string) (persistence.Archive, error) {
	if strings.HasPrefix(archiveURL, "memory://") {
		return memory.NewArchive(), nil
	}

	return file.NewArchive(archiveURL)
}
