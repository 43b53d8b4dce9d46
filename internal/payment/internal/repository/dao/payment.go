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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateKey   = errors.New("唯一索引冲突")
)

const (
	ColTradeNo       = "trade_no"
	ColStatus        = "status"
	ColStatusDesc    = "status_desc"
	ColTotalFee      = "total_fee"
	ColUserID        = "user_id"
	ColTransactionID = "transaction_id"
	ColEndTime       = "end_time"
	ColRefundID      = "refund_id"
	ColOutRefundNo   = "out_refund_no"
	ColRefundTime    = "refund_time"
	ColRefundDesc    = "refund_desc"
	ColGatewayRaw    = "gateway_raw"
	ColCtime         = "ctime"
	ColUtime         = "utime"
)

type OrderBy struct {
	Column string
	Desc   bool
}

type PaymentDAO interface {
	Insert(ctx context.Context, o PaymentOrder) (int64, error)
	FindOne(ctx context.Context, preds ...Predicate) (PaymentOrder, error)
	Find(ctx context.Context, offset, limit int, order OrderBy, preds ...Predicate) ([]PaymentOrder, error)
	Count(ctx context.Context, preds ...Predicate) (int64, error)
	Sum(ctx context.Context, column string, preds ...Predicate) (int64, error)
	// UpdateWhere 条件更新，返回真正被更新的行数
	UpdateWhere(ctx context.Context, updates map[string]any, preds ...Predicate) (int64, error)
	// CompareAndMarkPaid 条件更新，只有在确实更新了一行的时候才会在同一个事务里面写入结算任务
	CompareAndMarkPaid(ctx context.Context, updates map[string]any, task SettlementTask, preds ...Predicate) (int64, error)
	// Overwrite 无条件覆盖，task 不为 nil 的时候同时写入结算任务，已经存在则忽略
	// 没有命中任何记录的时候返回 ErrRecordNotFound
	Overwrite(ctx context.Context, updates map[string]any, task *SettlementTask, preds ...Predicate) (int64, error)
}

type PaymentGORMDAO struct {
	db *gorm.DB
}

func NewPaymentGORMDAO(db *gorm.DB) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, o PaymentOrder) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Create(&o).Error
	if isDuplicateErr(err) {
		return 0, fmt.Errorf("%w: trade_no=%s", ErrDuplicateKey, o.TradeNo)
	}
	return o.Id, err
}

func (g *PaymentGORMDAO) FindOne(ctx context.Context, preds ...Predicate) (PaymentOrder, error) {
	var res PaymentOrder
	err := withPredicates(g.db.WithContext(ctx), preds).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) Find(ctx context.Context, offset, limit int, order OrderBy, preds ...Predicate) ([]PaymentOrder, error) {
	var res []PaymentOrder
	db := withPredicates(g.db.WithContext(ctx), preds)
	if order.Column != "" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: order.Column}, Desc: order.Desc})
	}
	err := db.Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) Count(ctx context.Context, preds ...Predicate) (int64, error) {
	var res int64
	err := withPredicates(g.db.WithContext(ctx).Model(&PaymentOrder{}), preds).Count(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) Sum(ctx context.Context, column string, preds ...Predicate) (int64, error) {
	var res int64
	err := withPredicates(g.db.WithContext(ctx).Model(&PaymentOrder{}), preds).
		Select("COALESCE(SUM(?), 0)", clause.Column{Name: column}).
		Scan(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) UpdateWhere(ctx context.Context, updates map[string]any, preds ...Predicate) (int64, error) {
	res := withPredicates(g.db.WithContext(ctx).Model(&PaymentOrder{}), preds).
		Updates(withUtime(updates))
	return res.RowsAffected, res.Error
}

func (g *PaymentGORMDAO) CompareAndMarkPaid(ctx context.Context, updates map[string]any, task SettlementTask, preds ...Predicate) (int64, error) {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := withPredicates(tx.Model(&PaymentOrder{}), preds).Updates(withUtime(updates))
		if res.Error != nil {
			return fmt.Errorf("更新支付记录失败: %w", res.Error)
		}
		affected = res.RowsAffected
		if affected != 1 {
			return nil
		}
		return insertTaskIgnoreConflict(tx, task)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (g *PaymentGORMDAO) Overwrite(ctx context.Context, updates map[string]any, task *SettlementTask, preds ...Predicate) (int64, error) {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := withPredicates(tx.Model(&PaymentOrder{}), preds).Updates(withUtime(updates))
		if res.Error != nil {
			return fmt.Errorf("覆盖支付记录失败: %w", res.Error)
		}
		affected = res.RowsAffected
		if affected == 0 {
			// MySQL 在值没有变化的时候也会返回 0，这里确认一下记录是否存在
			var cnt int64
			if err := withPredicates(tx.Model(&PaymentOrder{}), preds).Count(&cnt).Error; err != nil {
				return fmt.Errorf("查询支付记录失败: %w", err)
			}
			if cnt == 0 {
				return ErrRecordNotFound
			}
		}
		if task == nil {
			return nil
		}
		return insertTaskIgnoreConflict(tx, *task)
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func insertTaskIgnoreConflict(tx *gorm.DB, task SettlementTask) error {
	now := time.Now().UnixMilli()
	task.Ctime, task.Utime = now, now
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: ColTradeNo}},
		DoNothing: true,
	}).Create(&task).Error
	if err != nil {
		return fmt.Errorf("写入结算任务失败: %w", err)
	}
	return nil
}

func withUtime(updates map[string]any) map[string]any {
	res := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		res[k] = v
	}
	res[ColUtime] = time.Now().UnixMilli()
	return res
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type PaymentOrder struct {
	Id            int64          `gorm:"primaryKey;autoIncrement;comment:支付记录自增ID"`
	TradeNo       string         `gorm:"type:varchar(64);not null;uniqueIndex:uniq_payment_trade_no;comment:商户订单号"`
	Status        uint8          `gorm:"type:tinyint unsigned;not null;default:1;index:idx_payment_status_ctime,priority:1;comment:支付状态 1=待支付 2=支付成功 3=未支付 4=支付失败 5=已退款 6=已关闭"`
	StatusDesc    string         `gorm:"type:varchar(32);comment:支付状态描述"`
	TotalFee      int64          `gorm:"not null;comment:支付金额,单位分,创建之后不允许修改"`
	Nonce         string         `gorm:"type:varchar(64);comment:调起支付的随机字符串"`
	PrepayId      string         `gorm:"type:varchar(128);comment:预支付交易会话标识"`
	Description   string         `gorm:"type:varchar(255);comment:商品描述"`
	Detail        string         `gorm:"type:varchar(1024);comment:商品详情"`
	BizType       string         `gorm:"type:varchar(16);comment:业务类型"`
	Attach        string         `gorm:"type:varchar(128);comment:附加数据"`
	UserId        string         `gorm:"type:varchar(128);index:idx_payment_user_id;comment:小程序openid"`
	TransactionId sql.NullString `gorm:"type:varchar(64);uniqueIndex:uniq_payment_transaction_id;comment:微信支付订单号"`
	EndTime       int64          `gorm:"comment:支付完成时间"`
	RefundId      sql.NullString `gorm:"type:varchar(64);comment:微信退款单号"`
	OutRefundNo   sql.NullString `gorm:"type:varchar(64);uniqueIndex:uniq_payment_out_refund_no;comment:商户退款单号"`
	RefundTime    int64          `gorm:"comment:退款时间"`
	RefundDesc    string         `gorm:"type:varchar(255);comment:退款原因"`
	GatewayRaw    datatypes.JSON `gorm:"comment:最近一次支付网关的原始响应"`
	Ctime         int64          `gorm:"index:idx_payment_status_ctime,priority:2"`
	Utime         int64
}
