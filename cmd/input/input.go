// Copyright 2025 StreamNative, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package input

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	// Stdin is the file name that reads the standard input.
	Stdin = "-"

	MaxLineSize = 1024 * 1024
)

type Stats struct {
	Files int
	Lines int64
	Bytes int64
}

// ReadLines calls fn for every line of every file, in order. With no files,
// the standard input is read. A file that fails does not stop the others:
// all the failures are returned together.
func ReadLines(stdin io.Reader, files []string, fn func(line string)) (Stats, error) {
	if len(files) == 0 {
		files = []string{Stdin}
	}

	var (
		stats Stats
		err   error
	)
	for _, file := range files {
		err = multierr.Append(err, readFile(stdin, file, &stats, fn))
	}
	return stats, err
}

func readFile(stdin io.Reader, file string, stats *Stats, fn func(line string)) error {
	r := stdin
	if file != Stdin {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrapf(err, "failed to open %s", file)
		}
		defer f.Close()
		r = f
	}

	stats.Files++
	scanner := bufio.NewScanner(&countingReader{r: r, count: &stats.Bytes})
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for scanner.Scan() {
		stats.Lines++
		fn(scanner.Text())
	}
	return errors.Wrapf(scanner.Err(), "failed to read %s", file)
}

// LogSummary logs what a command has consumed.
func LogSummary(command string, stats Stats) {
	slog.Info(
		"Processed input",
		slog.String("command", command),
		slog.Int("files", stats.Files),
		slog.String("lines", humanize.Comma(stats.Lines)),
		slog.String("size", humanize.Bytes(uint64(stats.Bytes))),
	)
}

type countingReader struct {
	r     io.Reader
	count *int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	*c.count += int64(n)
	return n, err
}
