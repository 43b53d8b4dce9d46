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
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"gorm.io/gorm"
)

type SettlementDAO interface {
	FindByTradeNo(ctx context.Context, tradeNo string) (SettlementTask, error)
	// Claim 抢占任务，返回是否抢占成功
	// 只有 Pending 并且已经到了执行时间，或者 Running 但是租约已经过期的任务才能被抢占
	Claim(ctx context.Context, tradeNo string, now int64, leaseUntil int64) (bool, error)
	Complete(ctx context.Context, tradeNo string) error
	// Release 执行失败，放回去等待重试
	Release(ctx context.Context, tradeNo string, nextRunAt int64, lastErr string) error
	FindDue(ctx context.Context, now int64, limit int) ([]SettlementTask, error)
}

type SettlementGORMDAO struct {
	db *gorm.DB
}

func NewSettlementGORMDAO(db *gorm.DB) SettlementDAO {
	return &SettlementGORMDAO{db: db}
}

func (s *SettlementGORMDAO) FindByTradeNo(ctx context.Context, tradeNo string) (SettlementTask, error) {
	var res SettlementTask
	err := s.db.WithContext(ctx).Where("trade_no = ?", tradeNo).First(&res).Error
	return res, err
}

func (s *SettlementGORMDAO) Claim(ctx context.Context, tradeNo string, now int64, leaseUntil int64) (bool, error) {
	res := s.db.WithContext(ctx).Model(&SettlementTask{}).
		Where("trade_no = ? AND ((status = ? AND next_run_at <= ?) OR (status = ? AND next_run_at < ?))",
			tradeNo,
			domain.SettlementStatusPending.ToUint8(), now,
			domain.SettlementStatusRunning.ToUint8(), now).
		Updates(map[string]any{
			"status":      domain.SettlementStatusRunning.ToUint8(),
			"attempts":    gorm.Expr("attempts + 1"),
			"next_run_at": leaseUntil,
			"utime":       time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *SettlementGORMDAO) Complete(ctx context.Context, tradeNo string) error {
	return s.db.WithContext(ctx).Model(&SettlementTask{}).
		Where("trade_no = ? AND status = ?", tradeNo, domain.SettlementStatusRunning.ToUint8()).
		Updates(map[string]any{
			"status":   domain.SettlementStatusDone.ToUint8(),
			"last_err": "",
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (s *SettlementGORMDAO) Release(ctx context.Context, tradeNo string, nextRunAt int64, lastErr string) error {
	return s.db.WithContext(ctx).Model(&SettlementTask{}).
		Where("trade_no = ? AND status = ?", tradeNo, domain.SettlementStatusRunning.ToUint8()).
		Updates(map[string]any{
			"status":      domain.SettlementStatusPending.ToUint8(),
			"next_run_at": nextRunAt,
			"last_err":    lastErr,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

func (s *SettlementGORMDAO) FindDue(ctx context.Context, now int64, limit int) ([]SettlementTask, error) {
	var res []SettlementTask
	err := s.db.WithContext(ctx).
		Where("(status = ? AND next_run_at <= ?) OR (status = ? AND next_run_at < ?)",
			domain.SettlementStatusPending.ToUint8(), now,
			domain.SettlementStatusRunning.ToUint8(), now).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

type SettlementTask struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:结算任务自增ID"`
	TradeNo   string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_settlement_trade_no;comment:商户订单号"`
	PaidAt    int64  `gorm:"not null;comment:支付完成时间"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;index:idx_settlement_status_next_run_at,priority:1;comment:任务状态 1=待执行 2=执行中 3=已完成"`
	Attempts  int    `gorm:"not null;default:0;comment:已经执行的次数"`
	NextRunAt int64  `gorm:"not null;index:idx_settlement_status_next_run_at,priority:2;comment:下一次执行时间或者租约到期时间"`
	LastErr   string `gorm:"type:varchar(512);comment:最近一次失败原因"`
	Ctime     int64
	Utime     int64
}
