package internal

import (
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Collects log lines while brew is running, so that we can print them all at
// the end rather than mixing them into the ramp output.
type LogWriter struct {
	lock   sync.Mutex
	buffer strings.Builder
}

// StartLogCollection makes logrus write into a new LogWriter
func StartLogCollection() *LogWriter {
	logs := &LogWriter{}
	log.SetOutput(logs)
	return logs
}

func (lw *LogWriter) Write(p []byte) (n int, err error) {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.Write(p)
}

func (lw *LogWriter) String() string {
	lw.lock.Lock()
	defer lw.lock.Unlock()

	return lw.buffer.String()
}
