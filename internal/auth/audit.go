package auth

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// AuditSink receives one record per authentication attempt.
type AuditSink interface {
	Record(at time.Time, success bool, username string) error
}

// FileSink appends login attempts to a text file, one line per attempt,
// synced after every write so records survive a crash.
type FileSink struct {
	mu sync.Mutex
	f  *os.File
}

func NewFileSink(path string) (*FileSink, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &FileSink{f: f}, nil
}

func (s *FileSink) Record(at time.Time, success bool, username string) error {
	outcome := "Failed"
	if success {
		outcome = "Successful"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.f, "%s - Login %s for user: %s\n",
		at.Format("2006-01-02T15:04:05"), outcome, username); err != nil {
		return err
	}
	return s.f.Sync()
}

func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}
