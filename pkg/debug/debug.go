package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

const logName = "mapdisp.log"

var (
	initOnce sync.Once
	fh       *os.File
)

func open() {
	var err error
	fh, err = os.OpenFile(logName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("error opening %s: %v", logName, err)
	}
}

// Log writes msg to the debug log with a timestamp and caller position.
func Log(msg string) {
	initOnce.Do(open)
	if fh == nil {
		return
	}
	timeStr := time.Now().Format("2006-01-02 15:04:05.000")
	if _, fullPath, line, ok := runtime.Caller(1); ok {
		msg = fmt.Sprintf("%s %s:%d %s", timeStr, filepath.Base(fullPath), line, msg)
	} else {
		msg = timeStr + " " + msg
	}
	fh.WriteString(msg + "\n")
}

func Close() {
	if fh != nil {
		fh.Sync()
		fh.Close()
	}
}
