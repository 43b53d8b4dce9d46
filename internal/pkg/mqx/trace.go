// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mqx

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/minipay/internal/pkg/mqx"

// TraceMq 给发送消息打点，消费不处理
type TraceMq struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTraceMq(q mq.MQ) *TraceMq {
	return NewTraceMqWithTracer(q, otel.GetTracerProvider().Tracer(instrumentationName))
}

func NewTraceMqWithTracer(q mq.MQ, tracer trace.Tracer) *TraceMq {
	return &TraceMq{MQ: q, tracer: tracer}
}

func (t *TraceMq) Producer(topic string) (mq.Producer, error) {
	pro, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &traceProducer{Producer: pro, topic: topic, tracer: t.tracer}, nil
}

type traceProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (t *traceProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "produce", m)
	defer span.End()
	res, err := t.Producer.Produce(ctx, m)
	return res, t.end(span, err)
}

func (t *traceProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := t.start(ctx, "produce_with_partition", m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := t.Producer.ProduceWithPartition(ctx, m, partition)
	return res, t.end(span, err)
}

func (t *traceProducer) start(ctx context.Context, op string, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := t.tracer.Start(ctx, t.topic+" "+op, trace.WithSpanKind(trace.SpanKindProducer))
	attrs := []attribute.KeyValue{
		attribute.String("messaging.system", "mq"),
		attribute.String("messaging.operation", op),
		attribute.String("messaging.destination", t.topic),
	}
	if m != nil {
		attrs = append(attrs, attribute.Int("messaging.message_length", len(m.Value)))
		if len(m.Key) > 0 {
			attrs = append(attrs, attribute.String("messaging.message_key", string(m.Key)))
		}
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func (t *traceProducer) end(span trace.Span, err error) error {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetStatus(codes.Ok, "")
	return nil
}
