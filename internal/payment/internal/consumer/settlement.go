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

package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/minipay/internal/payment/internal/event"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// SettlementEventConsumer 收到支付成功的消息之后立刻执行结算任务
// 消费失败不需要重试，任务还在表里面，重试任务会捞起来
type SettlementEventConsumer struct {
	dispatcher *service.SettlementDispatcher
	consumer   mq.Consumer
	logger     *elog.Component
}

func NewSettlementEventConsumer(dispatcher *service.SettlementDispatcher, q mq.MQ) (*SettlementEventConsumer, error) {
	const groupID = "payment_settlement"
	c, err := q.Consumer(event.SettlementEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &SettlementEventConsumer{
		dispatcher: dispatcher,
		consumer:   c,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("SettlementEventConsumer")),
	}, nil
}

func (c *SettlementEventConsumer) Start(ctx context.Context) {
	go func() {
		for ctx.Err() == nil {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费支付成功事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *SettlementEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.SettlementEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	_, err = c.dispatcher.Dispatch(ctx, evt.TradeNo)
	if err != nil {
		c.logger.Warn("执行结算任务失败，等待重试",
			elog.FieldErr(err),
			elog.String("trade_no", evt.TradeNo))
	}
	return err
}
