package refdata

import (
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"log/slog"
	"os"
)

// ReadRecords opens a semicolon-delimited reference file and yields one
// field-name to value map per data row, with the first row taken as the
// header. Keys and values pass through Normalize, which also disposes of a
// UTF-8 BOM on the first header cell. A missing file is not an error: a
// warning is logged and the sequence yields nothing. The sequence reads the
// file lazily and is single-use.
func ReadRecords(path string, logger *slog.Logger) iter.Seq[map[string]string] {
	return func(yield func(map[string]string) bool) {
		f, err := os.Open(path)
		if err != nil {
			logger.Warn("reference file not found, skipping", "path", path, "error", err)
			return
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.Comma = ';'
		reader.FieldsPerRecord = -1
		reader.LazyQuotes = true

		header, err := reader.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Warn("failed to read reference file header", "path", path, "error", err)
			}
			return
		}
		for i, h := range header {
			header[i] = Normalize(h)
		}

		for {
			row, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				logger.Warn("skipping unreadable reference row", "path", path, "error", err)
				continue
			}

			record := make(map[string]string, len(header))
			for i, key := range header {
				if i < len(row) {
					record[key] = Normalize(row[i])
				} else {
					record[key] = ""
				}
			}
			if !yield(record) {
				return
			}
		}
	}
}
