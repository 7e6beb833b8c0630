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

package tail

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/streamnative/oxia-collections/cmd/config"
	"github.com/streamnative/oxia-collections/cmd/flag"
	"github.com/streamnative/oxia-collections/cmd/input"
	"github.com/streamnative/oxia-collections/common"
	"github.com/streamnative/oxia-collections/common/collection"
)

type Config struct {
	Lines       int           `mapstructure:"lines"`
	Follow      bool          `mapstructure:"follow"`
	IdleTimeout time.Duration `mapstructure:"idle-timeout"`
}

func NewConfig() Config {
	return Config{
		Lines:       10,
		Follow:      false,
		IdleTimeout: 0,
	}
}

var (
	Cmd = &cobra.Command{
		Use:   "tail [FILE]...",
		Short: "Print the last lines of the input",
		Long: `Print the last lines of the given files, or of the standard input.
With --follow, keep printing the lines appended to the file. A last line
without a trailing newline is printed once following stops.`,
		RunE: exec,
	}

	conf = NewConfig()
)

func init() {
	flag.Lines(Cmd, &conf.Lines)
	Cmd.Flags().BoolVarP(&conf.Follow, "follow", "f", conf.Follow, "Keep printing lines appended to the file")
	Cmd.Flags().DurationVar(&conf.IdleTimeout, "idle-timeout", conf.IdleTimeout, "Stop following after this long without new data (0 means never)")
	Cmd.SilenceUsage = true
}

func exec(cmd *cobra.Command, args []string) error {
	if err := config.Load(cmd, "tail", &conf); err != nil {
		return err
	}
	if conf.Lines < 0 {
		return errors.Errorf("invalid number of lines: %d", conf.Lines)
	}

	out := cmd.OutOrStdout()
	lines := collection.NewRingBuffer[string](conf.Lines)

	if !conf.Follow {
		stats, err := input.ReadLines(cmd.InOrStdin(), args, lines.PushBack)
		printLines(out, lines)
		input.LogSummary("tail", stats)
		return err
	}

	if len(args) != 1 || args[0] == input.Stdin {
		return errors.New("--follow requires exactly one file")
	}

	ctx, cancel := common.SignalContext(cmd.Context())
	defer cancel()
	return follow(ctx, args[0], lines, out)
}

func printLines(out io.Writer, lines *collection.RingBuffer[string]) {
	for _, line := range lines.All() {
		_, _ = fmt.Fprintln(out, line)
	}
}

// follow prints the last lines of file, then every complete line appended
// to it, until ctx is done, the file goes away or it stays idle for longer
// than the configured timeout.
func follow(ctx context.Context, file string, lines *collection.RingBuffer[string], out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	// Watch before reading so that no write is missed
	if err := watcher.Add(file); err != nil {
		return errors.Wrapf(err, "failed to watch %s", file)
	}

	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", file)
	}
	defer f.Close()

	r := &lineReader{r: bufio.NewReader(f)}
	if err := r.readAll(lines.PushBack); err != nil {
		return errors.Wrapf(err, "failed to read %s", file)
	}
	printLines(out, lines)

	emit := func(line string) {
		_, _ = fmt.Fprintln(out, line)
	}

	var idle <-chan time.Time
	var timer *time.Timer
	if conf.IdleTimeout > 0 {
		timer = time.NewTimer(conf.IdleTimeout)
		defer timer.Stop()
		idle = timer.C
	}

	slog.Debug("Following file", slog.String("file", file))
	for {
		select {
		case <-ctx.Done():
			r.flush(emit)
			return nil

		case <-idle:
			r.flush(emit)
			slog.Info(
				"No new data, stop following",
				slog.String("file", file),
				slog.Duration("idle-timeout", conf.IdleTimeout),
			)
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				slog.Warn("File is gone, stop following", slog.String("file", file))
				r.flush(emit)
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := r.readAll(emit); err != nil {
				return errors.Wrapf(err, "failed to read %s", file)
			}
			if timer != nil {
				timer.Reset(conf.IdleTimeout)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrapf(err, "failed to watch %s", file)
		}
	}
}

// lineReader hands out complete lines only. A trailing line without a
// newline is kept until the rest of it is written, or until flush.
type lineReader struct {
	r       *bufio.Reader
	partial strings.Builder
}

func (l *lineReader) readAll(fn func(line string)) error {
	for {
		chunk, err := l.r.ReadString('\n')
		l.partial.WriteString(chunk)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line := strings.TrimSuffix(l.partial.String(), "\n")
		l.partial.Reset()
		fn(strings.TrimSuffix(line, "\r"))
	}
}

// flush hands out the pending partial line, if any.
func (l *lineReader) flush(fn func(line string)) {
	if l.partial.Len() == 0 {
		return
	}
	line := l.partial.String()
	l.partial.Reset()
	fn(strings.TrimSuffix(line, "\r"))
}
