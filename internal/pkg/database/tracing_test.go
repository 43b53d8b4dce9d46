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

package database

import (
	"context"
	"testing"

	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type tracedRecord struct {
	Id   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

func TestGormTracingPlugin(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	db := testioc.NewDB(t)
	require.NoError(t, db.AutoMigrate(&tracedRecord{}))
	require.NoError(t, NewGormTracingPluginWithTracer(tp.Tracer("test")).Initialize(db))

	ctx := context.Background()
	require.NoError(t, db.WithContext(ctx).Create(&tracedRecord{Name: "tom"}).Error)
	var r tracedRecord
	require.NoError(t, db.WithContext(ctx).Where("name = ?", "tom").First(&r).Error)
	err := db.WithContext(ctx).Where("name = ?", "jerry").First(&r).Error
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 3)
	assert.Equal(t, "traced_records INSERT", spans[0].Name())
	assert.Equal(t, "traced_records SELECT", spans[1].Name())
	// 找不到数据不算错误
	assert.Equal(t, codes.Ok, spans[2].Status().Code)
}
