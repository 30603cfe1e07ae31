package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kc9xyz/catmux"
	"github.com/lestrrat-go/strftime"
)

// eventlog writes every MuxEvent to a CSV file, rotated daily. It is
// the daemon-side counterpart of the core package's DrainEvents: the
// core itself never touches a filesystem, following the same
// separation the teacher draws between protocol decoding and its own
// on-disk logging.
const eventlogNamePattern = "%Y-%m-%d.csv"

type eventlog struct {
	dir      string
	fp       *os.File
	openName string
}

func newEventlog(dir string) (*eventlog, error) {
	if dir == "" {
		return &eventlog{}, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &eventlog{dir: dir}, nil
}

const eventlogHeader = "time,kind,radio_handle,from,to,freq_hz,mode,ptt,protocol,source,message\n"

func (l *eventlog) write(ev catmux.MuxEvent) error {
	if l.dir == "" {
		return nil
	}
	now := time.Now().UTC()
	name, err := strftime.Format(eventlogNamePattern, now)
	if err != nil {
		return err
	}
	if l.fp != nil && name != l.openName {
		l.fp.Close()
		l.fp = nil
	}
	if l.fp == nil {
		full := filepath.Join(l.dir, name)
		_, statErr := os.Stat(full)
		alreadyThere := statErr == nil
		f, openErr := os.OpenFile(full, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
		if openErr != nil {
			return openErr
		}
		l.fp = f
		l.openName = name
		if !alreadyThere {
			fmt.Fprint(l.fp, eventlogHeader)
		}
	}

	w := csv.NewWriter(l.fp)
	defer w.Flush()
	return w.Write([]string{
		now.Format(time.RFC3339Nano),
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.Handle), 10),
		strconv.FormatUint(uint64(ev.From), 10),
		strconv.FormatUint(uint64(ev.To), 10),
		strconv.FormatUint(ev.FreqHz, 10),
		ev.Mode.String(),
		strconv.FormatBool(ev.Ptt),
		ev.Protocol.String(),
		ev.Source,
		ev.Message,
	})
}

func (l *eventlog) close() {
	if l.fp != nil {
		l.fp.Close()
		l.fp = nil
	}
}
