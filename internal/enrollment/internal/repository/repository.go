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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/domain"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository/dao"
)

var ErrEnrollmentNotFound = dao.ErrRecordNotFound

type EnrollmentRepository interface {
	Create(ctx context.Context, e domain.Enrollment) (int64, error)
	FindActiveByTradeNo(ctx context.Context, tradeNo string) (domain.Enrollment, error)
	FindActiveByUser(ctx context.Context, activityId int64, userId string) (domain.Enrollment, error)
	MarkPaid(ctx context.Context, tradeNo string, paidAt int64) (bool, error)
	Cancel(ctx context.Context, id int64) error
	List(ctx context.Context, activityId int64, offset, limit int) ([]domain.Enrollment, error)
	Count(ctx context.Context, activityId int64) (int64, error)
	Stat(ctx context.Context, activityId int64) (domain.ActivityStat, error)
}

type enrollmentRepository struct {
	dao dao.EnrollmentDAO
}

func NewEnrollmentRepository(d dao.EnrollmentDAO) EnrollmentRepository {
	return &enrollmentRepository{dao: d}
}

func (r *enrollmentRepository) Create(ctx context.Context, e domain.Enrollment) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(e))
}

func (r *enrollmentRepository) FindActiveByTradeNo(ctx context.Context, tradeNo string) (domain.Enrollment, error) {
	e, err := r.dao.FindActiveByTradeNo(ctx, tradeNo)
	return r.toDomain(e), err
}

func (r *enrollmentRepository) FindActiveByUser(ctx context.Context, activityId int64, userId string) (domain.Enrollment, error) {
	e, err := r.dao.FindActiveByUser(ctx, activityId, userId)
	return r.toDomain(e), err
}

func (r *enrollmentRepository) MarkPaid(ctx context.Context, tradeNo string, paidAt int64) (bool, error) {
	affected, err := r.dao.MarkPaid(ctx, tradeNo, paidAt)
	return affected > 0, err
}

func (r *enrollmentRepository) Cancel(ctx context.Context, id int64) error {
	return r.dao.Cancel(ctx, id)
}

func (r *enrollmentRepository) List(ctx context.Context, activityId int64, offset, limit int) ([]domain.Enrollment, error) {
	es, err := r.dao.List(ctx, activityId, offset, limit)
	return slice.Map(es, func(idx int, src dao.Enrollment) domain.Enrollment {
		return r.toDomain(src)
	}), err
}

func (r *enrollmentRepository) Count(ctx context.Context, activityId int64) (int64, error) {
	return r.dao.Count(ctx, activityId)
}

func (r *enrollmentRepository) Stat(ctx context.Context, activityId int64) (domain.ActivityStat, error) {
	s, err := r.dao.Stat(ctx, activityId)
	return domain.ActivityStat{
		JoinCount: s.JoinCount,
		PaidCount: s.PaidCount,
		PaidFee:   s.PaidFee,
	}, err
}

func (r *enrollmentRepository) toEntity(e domain.Enrollment) dao.Enrollment {
	return dao.Enrollment{
		Id:         e.Id,
		ActivityId: e.ActivityId,
		UserId:     e.UserId,
		UserName:   e.UserName,
		Mobile:     e.Mobile,
		PayTradeNo: e.PayTradeNo,
		PayFee:     e.PayFee,
		Status:     e.Status.ToUint8(),
		PayStatus:  e.PayStatus.ToUint8(),
		PayTime:    e.PayTime,
	}
}

func (r *enrollmentRepository) toDomain(e dao.Enrollment) domain.Enrollment {
	return domain.Enrollment{
		Id:         e.Id,
		ActivityId: e.ActivityId,
		UserId:     e.UserId,
		UserName:   e.UserName,
		Mobile:     e.Mobile,
		PayTradeNo: e.PayTradeNo,
		PayFee:     e.PayFee,
		Status:     domain.Status(e.Status),
		PayStatus:  domain.PayStatus(e.PayStatus),
		PayTime:    e.PayTime,
		Ctime:      e.Ctime,
		Utime:      e.Utime,
	}
}
