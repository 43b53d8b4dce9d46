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

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ecodeclub/minipay/internal/enrollment/internal/domain"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/event"
	"github.com/ecodeclub/minipay/internal/enrollment/internal/repository"
	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const DefaultBizType = "ENROLL"

var (
	ErrInvalidArgument  = errors.New("参数错误")
	ErrActivityNotFound = errors.New("活动不存在")
	ErrAlreadyJoined    = errors.New("已经报名并且缴费")
)

type Config struct {
	BizType    string            `yaml:"bizType"`
	Activities []domain.Activity `yaml:"activities"`
}

type Service interface {
	// Join 报名并且发起缴费，之前未支付的报名会被取消
	Join(ctx context.Context, req domain.JoinRequest) (domain.Enrollment, payment.Prepay, error)
	List(ctx context.Context, activityId int64, offset, limit int) ([]domain.Enrollment, int64, error)
	Stat(ctx context.Context, activityId int64) (domain.ActivityStat, error)
}

type service struct {
	repo       repository.EnrollmentRepository
	paymentSvc payment.Service
	producer   event.EnrollmentPaidEventProducer
	bizType    string
	activities map[int64]domain.Activity
	l          *elog.Component
}

// EnrollmentService 同时实现了支付的结算回调和业务记录查询
type EnrollmentService interface {
	Service
	payment.SettlementHook
	payment.BusinessLocator
}

func NewService(repo repository.EnrollmentRepository,
	paymentSvc payment.Service,
	producer event.EnrollmentPaidEventProducer,
	cfg Config) EnrollmentService {
	activities := make(map[int64]domain.Activity, len(cfg.Activities))
	for _, a := range cfg.Activities {
		activities[a.Id] = a
	}
	bizType := cfg.BizType
	if bizType == "" {
		bizType = DefaultBizType
	}
	return &service{
		repo:       repo,
		paymentSvc: paymentSvc,
		producer:   producer,
		bizType:    bizType,
		activities: activities,
		l:          elog.DefaultLogger.With(elog.FieldComponent("EnrollmentService")),
	}
}

func (s *service) Join(ctx context.Context, req domain.JoinRequest) (domain.Enrollment, payment.Prepay, error) {
	if req.UserId == "" || req.UserName == "" {
		return domain.Enrollment{}, payment.Prepay{}, ErrInvalidArgument
	}
	activity, ok := s.activities[req.ActivityId]
	if !ok {
		return domain.Enrollment{}, payment.Prepay{}, fmt.Errorf("%w: id=%d", ErrActivityNotFound, req.ActivityId)
	}

	old, err := s.repo.FindActiveByUser(ctx, req.ActivityId, req.UserId)
	switch {
	case err == nil && old.Paid():
		return domain.Enrollment{}, payment.Prepay{}, ErrAlreadyJoined
	case err == nil:
		// 重新缴费，之前的订单作废
		if err = s.repo.Cancel(ctx, old.Id); err != nil {
			return domain.Enrollment{}, payment.Prepay{}, fmt.Errorf("取消旧的报名记录失败: %w", err)
		}
		s.paymentSvc.Close(ctx, old.PayTradeNo)
	case !errors.Is(err, repository.ErrEnrollmentNotFound):
		return domain.Enrollment{}, payment.Prepay{}, fmt.Errorf("查找报名记录失败: %w", err)
	}

	prepay, err := s.paymentSvc.Initiate(ctx, payment.InitiateRequest{
		BizType:     s.bizType,
		UserID:      req.UserId,
		Amount:      float64(activity.Fee),
		Description: activity.Title,
		Detail:      strconv.FormatInt(activity.Id, 10),
	})
	if err != nil {
		return domain.Enrollment{}, payment.Prepay{}, fmt.Errorf("发起缴费失败: %w", err)
	}

	e := domain.Enrollment{
		ActivityId: activity.Id,
		UserId:     req.UserId,
		UserName:   req.UserName,
		Mobile:     req.Mobile,
		PayTradeNo: prepay.TradeNo,
		PayFee:     prepay.Amount,
		Status:     domain.StatusWait,
		PayStatus:  domain.PayStatusUnpaid,
	}
	e.Id, err = s.repo.Create(ctx, e)
	if err != nil {
		// 没有报名记录的订单即使支付了也会被退款
		s.paymentSvc.Close(ctx, prepay.TradeNo)
		return domain.Enrollment{}, payment.Prepay{}, fmt.Errorf("保存报名记录失败: %w", err)
	}
	return e, prepay, nil
}

func (s *service) List(ctx context.Context, activityId int64, offset, limit int) ([]domain.Enrollment, int64, error) {
	var (
		eg    errgroup.Group
		es    []domain.Enrollment
		total int64
	)
	eg.Go(func() error {
		var err error
		es, err = s.repo.List(ctx, activityId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, activityId)
		return err
	})
	return es, total, eg.Wait()
}

func (s *service) Stat(ctx context.Context, activityId int64) (domain.ActivityStat, error) {
	return s.repo.Stat(ctx, activityId)
}
