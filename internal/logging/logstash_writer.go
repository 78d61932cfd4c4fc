package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogstashWriter mirrors log lines to a Logstash TCP input. Write only
// enqueues; a background goroutine owns the connection. Lines are dropped
// while the queue is full or Logstash is unreachable.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration
	queueSize     int

	queue   chan []byte
	done    chan struct{}
	dropped atomic.Int64

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

type Option func(*LogstashWriter)

// WithDialTimeout overrides the TCP dial timeout. Defaults to 2 seconds.
func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) {
		w.dialTimeout = d
	}
}

// WithWriteTimeout overrides the TCP write timeout. Defaults to 1 second.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) {
		w.writeTimeout = d
	}
}

// WithRetryInterval overrides the pause after a failed connect or write.
// Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) {
		w.retryInterval = d
	}
}

// WithQueueSize sets how many lines may wait for delivery. Defaults to 1024.
func WithQueueSize(n int) Option {
	return func(w *LogstashWriter) {
		if n > 0 {
			w.queueSize = n
		}
	}
}

func NewLogstashWriter(addr string, opts ...Option) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}

	w := &LogstashWriter{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
		queueSize:     1024,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.queue = make(chan []byte, w.queueSize)
	w.done = make(chan struct{})

	go w.run()
	return w, nil
}

// Write implements io.Writer and never blocks on the network.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p), len(p)+1)
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return 0, io.ErrClosedPipe
	}

	select {
	case w.queue <- data:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many lines were discarded so far.
func (w *LogstashWriter) Dropped() int64 {
	return w.dropped.Load()
}

// Close stops accepting lines, flushes what is queued on a best effort
// basis and closes the connection.
func (w *LogstashWriter) Close() error {
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.closed = true
		close(w.queue)
		w.mu.Unlock()
	})
	<-w.done
	return nil
}

func (w *LogstashWriter) run() {
	defer close(w.done)

	var (
		conn      net.Conn
		nextRetry time.Time
	)
	defer func() {
		if conn != nil {
			_ = conn.Close()
		}
	}()

	for line := range w.queue {
		if conn == nil {
			if !nextRetry.IsZero() && time.Now().Before(nextRetry) {
				w.dropped.Add(1)
				continue
			}
			c, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
			if err != nil {
				nextRetry = time.Now().Add(w.retryInterval)
				w.dropped.Add(1)
				continue
			}
			conn, nextRetry = c, time.Time{}
		}

		if w.writeTimeout > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
		}
		if _, err := conn.Write(line); err != nil {
			_ = conn.Close()
			conn = nil
			nextRetry = time.Now().Add(w.retryInterval)
			w.dropped.Add(1)
		}
	}
}
