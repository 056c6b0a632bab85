/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

//go:generate mockgen -destination gomocks_test.go -package certlogic . Service

package certlogic

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/hcert/pkg/observability/tracing/attributeutil"
)

// Personal data left out of span attributes.
var redactedPaths = []string{"nam", "dob"} //nolint:gochecknoglobals

type Service interface {
	Evaluate(ctx context.Context, credential interface{}, clock time.Time) error
}

var _ Service = (*Wrapper)(nil)

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) Evaluate(ctx context.Context, credential interface{}, clock time.Time) error {
	ctx, span := w.tracer.Start(ctx, "certlogic.Evaluate")
	defer span.End()

	opts := make([]attributeutil.Opt, 0, len(redactedPaths))
	for _, p := range redactedPaths {
		opts = append(opts, attributeutil.WithRedacted(p))
	}

	span.SetAttributes(attribute.String("validation_clock", clock.Format(time.RFC3339)))
	span.SetAttributes(attributeutil.JSON("credential", credential, opts...))

	if err := w.svc.Evaluate(ctx, credential, clock); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}

	return nil
}
