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

package dao

import (
	"context"
	"testing"

	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementGORMDAO(t *testing.T) {
	db := testioc.NewDB(t)
	require.NoError(t, InitTables(db))
	d := NewSettlementGORMDAO(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&SettlementTask{TradeNo: "T1", PaidAt: 10, Status: 1, NextRunAt: 1000}).Error)
	require.NoError(t, db.Create(&SettlementTask{TradeNo: "T2", PaidAt: 20, Status: 1, NextRunAt: 5000}).Error)

	// 还没到执行时间
	ok, err := d.Claim(ctx, "T2", 1000, 2000)
	require.NoError(t, err)
	assert.False(t, ok)

	due, err := d.FindDue(ctx, 1000, 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "T1", due[0].TradeNo)

	ok, err = d.Claim(ctx, "T1", 1000, 2000)
	require.NoError(t, err)
	assert.True(t, ok)
	// 租约还没过期，别人抢不到
	ok, err = d.Claim(ctx, "T1", 1500, 2500)
	require.NoError(t, err)
	assert.False(t, ok)
	due, err = d.FindDue(ctx, 1500, 10)
	require.NoError(t, err)
	assert.Len(t, due, 0)

	// 租约过期之后可以重新抢占
	ok, err = d.Claim(ctx, "T1", 2001, 3000)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, d.Release(ctx, "T1", 4000, "结算失败"))
	task, err := d.FindByTradeNo(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), task.Status)
	assert.Equal(t, 2, task.Attempts)
	assert.Equal(t, int64(4000), task.NextRunAt)
	assert.Equal(t, "结算失败", task.LastErr)

	ok, err = d.Claim(ctx, "T1", 4000, 5000)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, d.Complete(ctx, "T1"))
	task, err = d.FindByTradeNo(ctx, "T1")
	require.NoError(t, err)
	assert.Equal(t, uint8(3), task.Status)
	assert.Equal(t, "", task.LastErr)

	// 已经完成的任务不会再被抢占
	ok, err = d.Claim(ctx, "T1", 100000, 200000)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.FindByTradeNo(ctx, "T3")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
