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
	"fmt"
	"strconv"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	SortTypeStatus = "status"
	SortTypeSort   = "sort"

	// 手机号找不到用户的时候使用，保证查不到任何数据
	nullUserID = "null"

	defaultPageSize = 10
	maxPageSize     = 100
)

var sortVal2OrderSort = map[string]domain.OrderSort{
	"new": {Field: domain.SortByCtime, Desc: true},
	"old": {Field: domain.SortByCtime, Desc: false},
	"fee": {Field: domain.SortByTotalFee, Desc: true},
}

func (s *paymentService) List(ctx context.Context, q domain.ListQuery) (domain.ListResult, error) {
	filter, sort, err := s.toFilter(ctx, q)
	if err != nil {
		return domain.ListResult{}, err
	}
	page, size := q.Page, q.Size
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	size = min(size, maxPageSize)

	var (
		eg  errgroup.Group
		res domain.ListResult
	)
	eg.Go(func() error {
		var er error
		res.List, er = s.repo.List(ctx, filter, sort, (page-1)*size, size)
		return er
	})
	if q.IsTotal {
		eg.Go(func() error {
			var er error
			res.Total, er = s.repo.Count(ctx, filter)
			return er
		})
	} else {
		res.Total = q.OldTotal
	}
	return res, eg.Wait()
}

func (s *paymentService) toFilter(ctx context.Context, q domain.ListQuery) (domain.OrderFilter, domain.OrderSort, error) {
	var filter domain.OrderFilter
	sort := domain.OrderSort{Field: domain.SortByCtime, Desc: true}
	if q.Search != "" {
		uid, err := s.users.FindUserIDByMobile(ctx, q.Search)
		if err != nil {
			return filter, sort, fmt.Errorf("按照手机号查找用户失败: %w", err)
		}
		if uid == "" {
			uid = nullUserID
		}
		filter.UserID = uid
	}
	switch q.SortType {
	case SortTypeStatus:
		status, err := strconv.ParseUint(q.SortVal, 10, 8)
		if err != nil {
			return filter, sort, fmt.Errorf("%w: 状态 %q", ErrInvalidArgument, q.SortVal)
		}
		filter.Statuses = []domain.PaymentStatus{domain.PaymentStatus(status)}
	case SortTypeSort:
		if val, ok := sortVal2OrderSort[q.SortVal]; ok {
			sort = val
		}
	}
	return filter, sort, nil
}

func (s *paymentService) Stat(ctx context.Context, userID string) (domain.Stat, error) {
	paid := domain.OrderFilter{
		UserID:   userID,
		Statuses: []domain.PaymentStatus{domain.PaymentStatusSuccess},
	}
	refund := domain.OrderFilter{
		UserID:   userID,
		Statuses: []domain.PaymentStatus{domain.PaymentStatusRefund},
	}
	var (
		eg  errgroup.Group
		res domain.Stat
	)
	eg.Go(func() error {
		var er error
		res.PaidCount, er = s.repo.Count(ctx, paid)
		return er
	})
	eg.Go(func() error {
		var er error
		res.PaidFee, er = s.repo.SumFee(ctx, paid)
		return er
	})
	eg.Go(func() error {
		var er error
		res.RefundCount, er = s.repo.Count(ctx, refund)
		return er
	})
	eg.Go(func() error {
		var er error
		res.RefundFee, er = s.repo.SumFee(ctx, refund)
		return er
	})
	return res, eg.Wait()
}
