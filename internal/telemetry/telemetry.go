/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package telemetry records anonymous, opt-in usage events. Events stay in
// process: a bounded queue feeds a Sink (the log, or a JSON-lines file).
// Nothing is sent over the network.
package telemetry

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	applog "endgame/internal/log"
	"endgame/internal/version"
)

// Config holds runtime configuration. Telemetry is off unless OptIn is set.
//
// Environment variables (read by FromEnv):
//   - EG_TELEMETRY_OPT_IN: "1", "true", "yes" or "on" to enable
//   - EG_TELEMETRY_DEBUG: if set, logs dropped events and sink errors
type Config struct {
	OptIn        bool
	QueueSize    int
	DebugLogging bool
}

func FromEnv() Config {
	return Config{
		OptIn:        parseBool(os.Getenv("EG_TELEMETRY_OPT_IN")),
		QueueSize:    64,
		DebugLogging: os.Getenv("EG_TELEMETRY_DEBUG") != "",
	}
}

func parseBool(v string) bool {
	s := strings.ToLower(strings.TrimSpace(v))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}

// Event is one usage record. Props must not carry personal data.
type Event struct {
	Name    string         `json:"name"`
	TS      time.Time      `json:"ts"`
	Version string         `json:"version"`
	OS      string         `json:"os"`
	Arch    string         `json:"arch"`
	Props   map[string]any `json:"props,omitempty"`
}

// Client queues events and writes them to its sink from one goroutine.
// Event never blocks; when the queue is full the event is dropped.
type Client struct {
	cfg     Config
	sink    Sink
	log     *slog.Logger
	q       chan Event
	pending atomic.Int64
	once    sync.Once
	closed  chan struct{}
}

var (
	defaultClient *Client
	defaultOnce   sync.Once
)

// InitDefault installs a log-backed default client configured from env,
// unless one was installed already.
func InitDefault() {
	defaultOnce.Do(func() {
		if defaultClient == nil {
			defaultClient = New(FromEnv(), NewLogSink())
		}
	})
}

// NewDefault installs c as the package-level client.
func NewDefault(c *Client) {
	defaultOnce.Do(func() {})
	defaultClient = c
}

// New starts a client writing to sink.
func New(cfg Config, sink Sink) *Client {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	c := &Client{
		cfg:    cfg,
		sink:   sink,
		log:    applog.WithComponent("telemetry"),
		q:      make(chan Event, cfg.QueueSize),
		closed: make(chan struct{}),
	}
	go c.loop()
	return c
}

// Enabled reports whether events are recorded.
func (c *Client) Enabled() bool { return c != nil && c.cfg.OptIn && c.sink != nil }

// Enabled reports whether the default client records events.
func Enabled() bool {
	InitDefault()
	return defaultClient.Enabled()
}

// Event queues a usage event if enabled. Safe to call from any goroutine.
func (c *Client) Event(name string, props map[string]any) {
	if !c.Enabled() || name == "" || c.isClosed() {
		return
	}
	ev := newEvent(name, props)
	c.pending.Add(1)
	select {
	case c.q <- ev:
	default:
		c.pending.Add(-1)
		if c.cfg.DebugLogging {
			c.log.Debug("telemetry queue full, event dropped", slog.String("name", name))
		}
	}
}

// Record queues name on the default client.
func Record(name string, props map[string]any) { InitDefault(); defaultClient.Event(name, props) }

func newEvent(name string, props map[string]any) Event {
	ev := Event{
		Name:    name,
		TS:      time.Now().UTC(),
		Version: version.Version,
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if len(props) > 0 {
		ev.Props = make(map[string]any, len(props))
		for k, v := range props {
			ev.Props[k] = v
		}
	}
	return ev
}

// Flush waits briefly for queued events to reach the sink.
func (c *Client) Flush(ctx context.Context) {
	if c == nil {
		return
	}
	deadline := time.Now().Add(500 * time.Millisecond)
	for c.pending.Load() > 0 && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		case <-c.closed:
			return
		case <-time.After(5 * time.Millisecond):
		}
	}
}

// Close stops the writer goroutine. Queued events are discarded, later
// events are dropped and Flush returns at once.
func (c *Client) Close() {
	if c == nil {
		return
	}
	c.once.Do(func() { close(c.closed) })
}

func (c *Client) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func (c *Client) loop() {
	for {
		select {
		case <-c.closed:
			return
		case ev := <-c.q:
			c.write(ev)
			c.pending.Add(-1)
		}
	}
}

func (c *Client) write(ev Event) {
	if err := c.sink.Write(ev); err != nil && c.cfg.DebugLogging {
		c.log.Debug("telemetry sink write failed", slog.String("name", ev.Name), slog.Any("err", err))
	}
}

// RecordCrash writes a crash event synchronously, bypassing the queue, since
// the process is about to exit. Only the report size and first line are kept.
func (c *Client) RecordCrash(report []byte) {
	if !c.Enabled() || len(report) == 0 {
		return
	}
	first, _, _ := strings.Cut(string(report), "\n")
	c.write(newEvent("crash", map[string]any{"bytes": len(report), "summary": first}))
}

// RecordCrash uses the default client.
func RecordCrash(report []byte) { InitDefault(); defaultClient.RecordCrash(report) }
