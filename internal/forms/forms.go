/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package forms holds the collaborators the storefront calls but does not
// implement: form submission and the external catalog link. Both are stubs
// that acknowledge the attempt and report ErrNotImplemented.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	applog "endgame/internal/log"
)

// ErrNotImplemented is what every stub returns. Callers treat it as an
// acknowledgement, never as a failure.
var ErrNotImplemented = errors.New("not implemented")

// Kind names a form.
type Kind string

const (
	KindLogin    Kind = "login"
	KindRegister Kind = "register"
	KindContact  Kind = "contact"
	KindCheckout Kind = "checkout"
)

// Submission is a filled-in form. Field values are never logged.
type Submission struct {
	Kind   Kind
	Fields map[string]string
}

// Submitter accepts form submissions.
type Submitter interface {
	Submit(ctx context.Context, s Submission) error
}

// Linker opens an external destination such as the full catalog.
type Linker interface {
	Open(ctx context.Context, target string) error
}

// Stub implements Submitter and Linker without doing anything.
type Stub struct {
	log *slog.Logger
}

// NewStub returns the demo collaborator.
func NewStub() *Stub { return &Stub{log: applog.WithComponent("forms")} }

func (s *Stub) Submit(_ context.Context, sub Submission) error {
	s.log.Info("form submitted to demo stub", slog.String("kind", string(sub.Kind)), slog.Int("fields", len(sub.Fields)))
	return fmt.Errorf("%s form: %w", sub.Kind, ErrNotImplemented)
}

func (s *Stub) Open(_ context.Context, target string) error {
	s.log.Info("external link requested", slog.String("target", target))
	return fmt.Errorf("open %s: %w", target, ErrNotImplemented)
}

// Acknowledge is the message shown to the user after submitting kind.
func Acknowledge(kind Kind) string {
	switch kind {
	case KindLogin:
		return "Login functionality is demo only."
	case KindRegister:
		return "Registration functionality is demo only."
	case KindContact:
		return "Contact form submitted! (This is a demo)"
	case KindCheckout:
		return "Checkout is not implemented in this demo."
	default:
		return "This feature is not available in the demo."
	}
}
