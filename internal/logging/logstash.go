package logging

import (
	"errors"
	"io"
	"log"
	"net"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogstashWriter ships log lines to a Logstash TCP input from a background
// goroutine. Write only enqueues; when the queue is full or Logstash is down
// lines are dropped and counted.
type LogstashWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration

	queue   chan []byte
	done    chan struct{}
	once    sync.Once
	dropped atomic.Int64

	conn      net.Conn
	nextRetry time.Time
}

type Option func(*LogstashWriter)

func WithDialTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.dialTimeout = d }
}

func WithWriteTimeout(d time.Duration) Option {
	return func(w *LogstashWriter) { w.writeTimeout = d }
}

// WithRetryInterval sets how long to wait after a failed dial or write before
// reconnecting. Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) Option {
	return func(w *LogstashWriter) { w.retryInterval = d }
}

func WithQueueSize(n int) Option {
	return func(w *LogstashWriter) {
		if n > 0 {
			w.queue = make(chan []byte, n)
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
		queue:         make(chan []byte, 1024),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	select {
	case <-w.done:
		return 0, io.ErrClosedPipe
	default:
	}

	select {
	case w.queue <- line:
	default:
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped reports how many lines were discarded so far.
func (w *LogstashWriter) Dropped() int64 {
	return w.dropped.Load()
}

// Close stops accepting lines, flushes what is queued and closes the connection.
func (w *LogstashWriter) Close() error {
	w.once.Do(func() { close(w.done) })
	return nil
}

func (w *LogstashWriter) run() {
	defer func() {
		if w.conn != nil {
			_ = w.conn.Close()
		}
	}()

	for {
		select {
		case line := <-w.queue:
			w.send(line)
		case <-w.done:
			for {
				select {
				case line := <-w.queue:
					w.send(line)
				default:
					return
				}
			}
		}
	}
}

func (w *LogstashWriter) send(line []byte) {
	if err := w.ensureConn(); err != nil {
		w.dropped.Add(1)
		return
	}
	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}
	if _, err := w.conn.Write(line); err != nil {
		_ = w.conn.Close()
		w.conn = nil
		w.nextRetry = time.Now().Add(w.retryInterval)
		w.dropped.Add(1)
	}
}

func (w *LogstashWriter) ensureConn() error {
	if w.conn != nil {
		return nil
	}
	if !w.nextRetry.IsZero() && time.Now().Before(w.nextRetry) {
		return errRetryCooldown
	}
	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.nextRetry = time.Now().Add(w.retryInterval)
		return err
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

var errRetryCooldown = errors.New("logstash: retry cooldown in effect")

// Setup points the standard logger at stderr and, when addr is set, mirrors it
// to Logstash. The returned closer is never nil.
func Setup(addr string) io.Closer {
	log.SetFlags(log.LstdFlags | log.LUTC)
	log.SetOutput(os.Stderr)

	if strings.TrimSpace(addr) == "" {
		return io.NopCloser(nil)
	}
	w, err := NewLogstashWriter(addr)
	if err != nil {
		log.Printf("logstash disabled: %v", err)
		return io.NopCloser(nil)
	}
	log.SetOutput(io.MultiWriter(os.Stderr, w))
	log.Printf("mirroring logs to logstash at %s", addr)
	return w
}
