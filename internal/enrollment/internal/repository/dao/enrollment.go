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

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

const (
	statusWait   uint8 = 1
	statusSucc   uint8 = 2
	statusCancel uint8 = 3

	payStatusUnpaid uint8 = 0
	payStatusPaid   uint8 = 1
)

// activeStatus 待审核或者报名成功
func activeStatus() clause.Expression {
	return clause.IN{
		Column: clause.Column{Name: "status"},
		Values: []any{statusWait, statusSucc},
	}
}

type EnrollmentDAO interface {
	Insert(ctx context.Context, e Enrollment) (int64, error)
	// FindActiveByTradeNo 只查找待审核或者报名成功的记录
	FindActiveByTradeNo(ctx context.Context, tradeNo string) (Enrollment, error)
	FindActiveByUser(ctx context.Context, activityId int64, userId string) (Enrollment, error)
	// MarkPaid 只更新还没有支付的记录，返回被更新的行数
	MarkPaid(ctx context.Context, tradeNo string, paidAt int64) (int64, error)
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, activityId int64, offset, limit int) ([]Enrollment, error)
	Count(ctx context.Context, activityId int64) (int64, error)
	Stat(ctx context.Context, activityId int64) (Stat, error)
}

type EnrollmentGORMDAO struct {
	db *gorm.DB
}

func NewEnrollmentGORMDAO(db *gorm.DB) EnrollmentDAO {
	return &EnrollmentGORMDAO{db: db}
}

func (g *EnrollmentGORMDAO) Insert(ctx context.Context, e Enrollment) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime, e.Utime = now, now
	err := g.db.WithContext(ctx).Create(&e).Error
	return e.Id, err
}

func (g *EnrollmentGORMDAO) FindActiveByTradeNo(ctx context.Context, tradeNo string) (Enrollment, error) {
	var res Enrollment
	err := g.db.WithContext(ctx).
		Where("pay_trade_no = ?", tradeNo).
		Where(activeStatus()).
		First(&res).Error
	return res, err
}

func (g *EnrollmentGORMDAO) FindActiveByUser(ctx context.Context, activityId int64, userId string) (Enrollment, error) {
	var res Enrollment
	err := g.db.WithContext(ctx).
		Where("activity_id = ? AND user_id = ?", activityId, userId).
		Where(activeStatus()).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		First(&res).Error
	return res, err
}

func (g *EnrollmentGORMDAO) MarkPaid(ctx context.Context, tradeNo string, paidAt int64) (int64, error) {
	res := g.db.WithContext(ctx).Model(&Enrollment{}).
		Where("pay_trade_no = ? AND pay_status = ?", tradeNo, payStatusUnpaid).
		Where(activeStatus()).
		Updates(map[string]any{
			"pay_status": payStatusPaid,
			"pay_time":   paidAt,
			"utime":      time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (g *EnrollmentGORMDAO) Cancel(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Enrollment{}).
		Where("id = ? AND pay_status = ?", id, payStatusUnpaid).
		Updates(map[string]any{
			"status": statusCancel,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *EnrollmentGORMDAO) List(ctx context.Context, activityId int64, offset, limit int) ([]Enrollment, error) {
	var res []Enrollment
	err := g.byActivity(ctx, activityId).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *EnrollmentGORMDAO) Count(ctx context.Context, activityId int64) (int64, error) {
	var res int64
	err := g.byActivity(ctx, activityId).Count(&res).Error
	return res, err
}

func (g *EnrollmentGORMDAO) Stat(ctx context.Context, activityId int64) (Stat, error) {
	var res Stat
	err := g.db.WithContext(ctx).Model(&Enrollment{}).
		Select("COUNT(*) AS join_count, "+
			"COALESCE(SUM(CASE WHEN pay_status = ? THEN 1 ELSE 0 END), 0) AS paid_count, "+
			"COALESCE(SUM(CASE WHEN pay_status = ? THEN pay_fee ELSE 0 END), 0) AS paid_fee",
			payStatusPaid, payStatusPaid).
		Where("activity_id = ?", activityId).
		Where(activeStatus()).
		Scan(&res).Error
	return res, err
}

// activityId 为 0 的时候查询全部
func (g *EnrollmentGORMDAO) byActivity(ctx context.Context, activityId int64) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Enrollment{})
	if activityId > 0 {
		db = db.Where("activity_id = ?", activityId)
	}
	return db
}

type Enrollment struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	ActivityId int64  `gorm:"index:idx_activity_user"`
	UserId     string `gorm:"type:varchar(128);index:idx_activity_user"`
	UserName   string `gorm:"type:varchar(64)"`
	Mobile     string `gorm:"type:varchar(32)"`
	PayTradeNo string `gorm:"type:varchar(64);uniqueIndex"`
	// 单位分
	PayFee    int64
	Status    uint8 `gorm:"type:tinyint unsigned;not null;default:1;comment:1=待审核 2=报名成功 3=已取消"`
	PayStatus uint8 `gorm:"type:tinyint unsigned;not null;default:0;comment:0=未支付 1=已支付"`
	PayTime   int64
	Ctime     int64
	Utime     int64
}

type Stat struct {
	JoinCount int64
	PaidCount int64
	PaidFee   int64
}
