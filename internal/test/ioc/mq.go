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

package testioc

import (
	"context"
	"testing"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/require"
)

// NewMQ 替换用内存实现，方便测试
func NewMQ(t testing.TB) mq.MQ {
	type Topic struct {
		Name       string
		Partitions int
	}
	topics := []Topic{
		{
			Name:       "payment_settlement_events",
			Partitions: 1,
		},
		{
			Name:       "enrollment_paid_events",
			Partitions: 1,
		},
	}
	qq := memory.NewMQ()
	for _, tp := range topics {
		err := qq.CreateTopic(context.Background(), tp.Name, tp.Partitions)
		require.NoError(t, err)
	}
	return qq
}
