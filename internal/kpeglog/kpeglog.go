// Package kpeglog owns the process-wide append-only log sink described in
// spec.md §6, conventionally named kpeg.log. The sink is a rotating file
// writer from gopkg.in/natefinch/lumberjack.v2 (a dependency sourced from
// the wider example corpus rather than the teacher, which logs only to
// stdout/stderr) wrapped in a standard *log.Logger, following the pattern
// of plugging lumberjack's io.Writer straight into log.New used in that
// corpus's av codecs.
package kpeglog

import (
    "log"
    "sync"

    "gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the conventional log file name named in spec.md §6.
const FileName = "kpeg.log"

var (
    once   sync.Once
    logger *log.Logger
)

// Logger returns the process-wide logger, opening FileName for append (via
// lumberjack, which creates it if absent and rotates it past 10MB) on
// first use. A write that fails because the file cannot be created or
// written (read-only filesystem, permission error) is silently dropped by
// log.Logger itself: an unwritable log sink is explicitly non-fatal per
// spec.md §6, so Logger never returns an error or panics on that account.
func Logger() *log.Logger {
    once.Do(func() {
        writer := &lumberjack.Logger{
            Filename: FileName,
            MaxSize:  10, // megabytes
            Compress: false,
        }
        logger = log.New(writer, "", log.LstdFlags)
    })
    return logger
}
