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
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type testEvent struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

func (e testEvent) MessageKey() string {
	return e.Id
}

type plainEvent struct {
	Name string `json:"name"`
}

func TestGeneralProducer(t *testing.T) {
	const topic = "test_events"
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	tq := NewTraceMqWithTracer(q, tp.Tracer("test"))
	c, err := tq.Consumer(topic, "test")
	require.NoError(t, err)

	keyed, err := NewGeneralProducer[testEvent](tq, topic)
	require.NoError(t, err)
	plain, err := NewGeneralProducer[plainEvent](tq, topic)
	require.NoError(t, err)

	require.NoError(t, keyed.Produce(ctx, testEvent{Id: "T1", Name: "tom"}))
	msg, err := c.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", string(msg.Key))
	var evt testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, testEvent{Id: "T1", Name: "tom"}, evt)

	require.NoError(t, plain.Produce(ctx, plainEvent{Name: "jerry"}))
	msg, err = c.Consume(ctx)
	require.NoError(t, err)
	assert.Empty(t, msg.Key)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "test_events produce", spans[0].Name())
	assert.Contains(t, spans[0].Attributes(), attribute.String("messaging.message_key", "T1"))
}
