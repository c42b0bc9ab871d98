/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package telemetry

import (
	"encoding/json"
	"io"
	"log/slog"
	"sync"

	applog "endgame/internal/log"
)

// Sink receives events from the client's writer goroutine.
type Sink interface {
	Write(ev Event) error
}

// LogSink writes events to the application log at INFO.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink() *LogSink { return &LogSink{log: applog.WithComponent("telemetry")} }

func (s *LogSink) Write(ev Event) error {
	attrs := []any{slog.String("event", ev.Name)}
	for k, v := range ev.Props {
		attrs = append(attrs, slog.Any(k, v))
	}
	s.log.Info("usage event", attrs...)
	return nil
}

// JSONLSink writes one JSON object per line to w.
type JSONLSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewJSONLSink(w io.Writer) *JSONLSink { return &JSONLSink{enc: json.NewEncoder(w)} }

func (s *JSONLSink) Write(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(ev)
}
