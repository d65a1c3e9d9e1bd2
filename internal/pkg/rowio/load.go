package rowio

import (
	"os"

	"github.com/bcongdon/rowflow"
	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	pb "gopkg.in/cheggaaa/pb.v1"
)

// ListGlobs expands every glob and concatenates the files they match
func ListGlobs(globs []string) ([]FileInfo, error) {
	files := make([]FileInfo, 0)
	for _, glob := range globs {
		matched, err := ListFiles(glob)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			log.Warnf("No files match %s", glob)
		}
		files = append(files, matched...)
	}
	return files, nil
}

// ReadFiles reads every row of the given JSON-lines files, in order. When
// prefix is not empty, a progress bar labelled with it is drawn on stderr.
func ReadFiles(files []FileInfo, prefix string) ([]rowflow.Row, error) {
	totalSize := int64(0)
	for _, file := range files {
		totalSize += file.Size
	}

	var bar *pb.ProgressBar
	if prefix != "" {
		bar = pb.New64(totalSize).SetUnits(pb.U_BYTES).Prefix(prefix)
		bar.Output = os.Stderr
		bar.Start()
	}

	rows := make([]rowflow.Row, 0)
	for _, file := range files {
		fileRows, err := ReadFile(file.Name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, fileRows...)
		if bar != nil {
			bar.Add64(file.Size)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	log.Debugf("Read %s rows from %d files (%s)",
		humanize.Comma(int64(len(rows))), len(files), humanize.Bytes(uint64(totalSize)))
	return rows, nil
}
