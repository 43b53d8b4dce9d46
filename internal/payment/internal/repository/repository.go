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
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository/dao"
	"gorm.io/datatypes"
)

var (
	ErrPaymentNotFound    = dao.ErrRecordNotFound
	ErrSettlementNotFound = dao.ErrRecordNotFound
	ErrDuplicateTradeNo   = dao.ErrDuplicateKey
)

type PaymentRepository interface {
	Create(ctx context.Context, o domain.PaymentOrder) (int64, error)
	FindByTradeNo(ctx context.Context, tradeNo string) (domain.PaymentOrder, error)
	// MarkPaid 只会命中 tradeNo 和 totalFee 都一致，并且状态属于 domain.PaidTransitionFrom 的记录
	// 状态只会单向推进，已经支付成功或者已经退款的记录不会再被回调改回去
	// 返回值为 1 才说明是本次调用完成了状态变更，同时写入了结算任务
	MarkPaid(ctx context.Context, tradeNo string, totalFee int64, txnID string, endTime int64, raw any) (int64, error)
	// Reconcile 按照微信的交易状态无条件覆盖本地状态
	// 本地没有这条记录的时候返回 ErrPaymentNotFound，也不会写入结算任务
	Reconcile(ctx context.Context, tradeNo string, res domain.TradeQueryResult, endTime int64) (domain.PaymentStatus, error)
	MarkRefunded(ctx context.Context, tradeNo string, refund domain.RefundInfo, raw any) (int64, error)

	List(ctx context.Context, filter domain.OrderFilter, sort domain.OrderSort, offset, limit int) ([]domain.PaymentOrder, error)
	Count(ctx context.Context, filter domain.OrderFilter) (int64, error)
	SumFee(ctx context.Context, filter domain.OrderFilter) (int64, error)

	FindSettlement(ctx context.Context, tradeNo string) (domain.SettlementTask, error)
	ClaimSettlement(ctx context.Context, tradeNo string, now time.Time, lease time.Duration) (bool, error)
	CompleteSettlement(ctx context.Context, tradeNo string) error
	ReleaseSettlement(ctx context.Context, tradeNo string, nextRunAt time.Time, lastErr string) error
	FindDueSettlements(ctx context.Context, now time.Time, limit int) ([]domain.SettlementTask, error)
}

type paymentRepository struct {
	dao           dao.PaymentDAO
	settlementDAO dao.SettlementDAO
}

func NewPaymentRepository(d dao.PaymentDAO, sd dao.SettlementDAO) PaymentRepository {
	return &paymentRepository{
		dao:           d,
		settlementDAO: sd,
	}
}

func (p *paymentRepository) Create(ctx context.Context, o domain.PaymentOrder) (int64, error) {
	return p.dao.Insert(ctx, p.toEntity(o))
}

func (p *paymentRepository) FindByTradeNo(ctx context.Context, tradeNo string) (domain.PaymentOrder, error) {
	o, err := p.dao.FindOne(ctx, dao.Eq(dao.ColTradeNo, tradeNo))
	if err != nil {
		return domain.PaymentOrder{}, err
	}
	return p.toDomain(o), nil
}

func (p *paymentRepository) MarkPaid(ctx context.Context, tradeNo string, totalFee int64,
	txnID string, endTime int64, raw any) (int64, error) {
	updates := map[string]any{
		dao.ColStatus:        domain.PaymentStatusSuccess.ToUint8(),
		dao.ColStatusDesc:    domain.PaymentStatusSuccess.String(),
		dao.ColTransactionID: p.nullString(txnID),
		dao.ColEndTime:       endTime,
		dao.ColGatewayRaw:    p.rawJSON(raw),
	}
	return p.dao.CompareAndMarkPaid(ctx, updates,
		p.newSettlementTask(tradeNo, endTime),
		dao.Eq(dao.ColTradeNo, tradeNo),
		dao.Eq(dao.ColTotalFee, totalFee),
		dao.In(dao.ColStatus, p.toUint8s(domain.PaidTransitionFrom)...),
	)
}

func (p *paymentRepository) Reconcile(ctx context.Context, tradeNo string,
	res domain.TradeQueryResult, endTime int64) (domain.PaymentStatus, error) {
	status := domain.PaymentStatusFail
	if res.OK() {
		status = domain.StatusOfTradeState(res.TradeState)
	}
	updates := map[string]any{
		dao.ColStatus:     status.ToUint8(),
		dao.ColStatusDesc: status.String(),
		dao.ColGatewayRaw: p.rawJSON(res.Raw),
	}
	var task *dao.SettlementTask
	if status == domain.PaymentStatusSuccess {
		updates[dao.ColEndTime] = endTime
		updates[dao.ColTransactionID] = p.nullString(res.TransactionID)
		t := p.newSettlementTask(tradeNo, endTime)
		task = &t
	}
	_, err := p.dao.Overwrite(ctx, updates, task, dao.Eq(dao.ColTradeNo, tradeNo))
	return status, err
}

func (p *paymentRepository) MarkRefunded(ctx context.Context, tradeNo string, refund domain.RefundInfo, raw any) (int64, error) {
	return p.dao.UpdateWhere(ctx, map[string]any{
		dao.ColStatus:      domain.PaymentStatusRefund.ToUint8(),
		dao.ColStatusDesc:  domain.PaymentStatusRefund.String(),
		dao.ColRefundID:    p.nullString(refund.RefundID),
		dao.ColOutRefundNo: p.nullString(refund.OutRefundNo),
		dao.ColRefundTime:  refund.RefundTime,
		dao.ColRefundDesc:  refund.Desc,
		dao.ColGatewayRaw:  p.rawJSON(raw),
	}, dao.Eq(dao.ColTradeNo, tradeNo))
}

func (p *paymentRepository) List(ctx context.Context, filter domain.OrderFilter, sort domain.OrderSort,
	offset, limit int) ([]domain.PaymentOrder, error) {
	order := dao.OrderBy{Column: dao.ColCtime, Desc: sort.Desc}
	if sort.Field == domain.SortByTotalFee {
		order.Column = dao.ColTotalFee
	}
	os, err := p.dao.Find(ctx, offset, limit, order, p.predicates(filter)...)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.PaymentOrder) domain.PaymentOrder {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) Count(ctx context.Context, filter domain.OrderFilter) (int64, error) {
	return p.dao.Count(ctx, p.predicates(filter)...)
}

func (p *paymentRepository) SumFee(ctx context.Context, filter domain.OrderFilter) (int64, error) {
	return p.dao.Sum(ctx, dao.ColTotalFee, p.predicates(filter)...)
}

func (p *paymentRepository) FindSettlement(ctx context.Context, tradeNo string) (domain.SettlementTask, error) {
	t, err := p.settlementDAO.FindByTradeNo(ctx, tradeNo)
	if err != nil {
		return domain.SettlementTask{}, err
	}
	return p.toSettlementDomain(t), nil
}

func (p *paymentRepository) ClaimSettlement(ctx context.Context, tradeNo string, now time.Time, lease time.Duration) (bool, error) {
	return p.settlementDAO.Claim(ctx, tradeNo, now.UnixMilli(), now.Add(lease).UnixMilli())
}

func (p *paymentRepository) CompleteSettlement(ctx context.Context, tradeNo string) error {
	return p.settlementDAO.Complete(ctx, tradeNo)
}

func (p *paymentRepository) ReleaseSettlement(ctx context.Context, tradeNo string, nextRunAt time.Time, lastErr string) error {
	const maxErrLen = 512
	if len(lastErr) > maxErrLen {
		lastErr = lastErr[:maxErrLen]
	}
	return p.settlementDAO.Release(ctx, tradeNo, nextRunAt.UnixMilli(), lastErr)
}

func (p *paymentRepository) FindDueSettlements(ctx context.Context, now time.Time, limit int) ([]domain.SettlementTask, error) {
	ts, err := p.settlementDAO.FindDue(ctx, now.UnixMilli(), limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(idx int, src dao.SettlementTask) domain.SettlementTask {
		return p.toSettlementDomain(src)
	}), nil
}

func (p *paymentRepository) predicates(filter domain.OrderFilter) []dao.Predicate {
	preds := make([]dao.Predicate, 0, 3)
	if filter.UserID != "" {
		preds = append(preds, dao.Eq(dao.ColUserID, filter.UserID))
	}
	if len(filter.Statuses) > 0 {
		preds = append(preds, dao.In(dao.ColStatus, p.toUint8s(filter.Statuses)...))
	}
	if filter.CtimeBefore > 0 {
		preds = append(preds, dao.Range(dao.ColCtime, nil, filter.CtimeBefore))
	}
	return preds
}

func (p *paymentRepository) newSettlementTask(tradeNo string, paidAt int64) dao.SettlementTask {
	return dao.SettlementTask{
		TradeNo:   tradeNo,
		PaidAt:    paidAt,
		Status:    domain.SettlementStatusPending.ToUint8(),
		NextRunAt: time.Now().UnixMilli(),
	}
}

func (p *paymentRepository) toUint8s(statuses []domain.PaymentStatus) []uint8 {
	return slice.Map(statuses, func(idx int, src domain.PaymentStatus) uint8 {
		return src.ToUint8()
	})
}

// nullString 空字符串写成 NULL，否则会和唯一索引冲突
func (p *paymentRepository) nullString(val string) sql.NullString {
	return sql.NullString{String: val, Valid: val != ""}
}

// rawJSON 原始响应只是留档，序列化失败也不影响主流程
func (p *paymentRepository) rawJSON(raw any) datatypes.JSON {
	if raw == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	return data
}

func (p *paymentRepository) toEntity(o domain.PaymentOrder) dao.PaymentOrder {
	return dao.PaymentOrder{
		Id:            o.ID,
		TradeNo:       o.TradeNo,
		Status:        o.Status.ToUint8(),
		StatusDesc:    o.Status.String(),
		TotalFee:      o.TotalFee,
		Nonce:         o.Nonce,
		PrepayId:      o.PrepayID,
		Description:   o.Description,
		Detail:        o.Detail,
		BizType:       o.BizType,
		Attach:        o.Attach,
		UserId:        o.UserID,
		TransactionId: p.nullString(o.TransactionID),
		EndTime:       o.EndTime,
	}
}

func (p *paymentRepository) toDomain(o dao.PaymentOrder) domain.PaymentOrder {
	return domain.PaymentOrder{
		ID:            o.Id,
		TradeNo:       o.TradeNo,
		Status:        domain.PaymentStatus(o.Status),
		TotalFee:      o.TotalFee,
		Nonce:         o.Nonce,
		PrepayID:      o.PrepayId,
		Description:   o.Description,
		Detail:        o.Detail,
		BizType:       o.BizType,
		Attach:        o.Attach,
		UserID:        o.UserId,
		TransactionID: o.TransactionId.String,
		EndTime:       o.EndTime,
		Refund: domain.RefundInfo{
			RefundID:    o.RefundId.String,
			OutRefundNo: o.OutRefundNo.String,
			RefundTime:  o.RefundTime,
			Desc:        o.RefundDesc,
		},
		Ctime: o.Ctime,
		Utime: o.Utime,
	}
}

func (p *paymentRepository) toSettlementDomain(t dao.SettlementTask) domain.SettlementTask {
	return domain.SettlementTask{
		ID:        t.Id,
		TradeNo:   t.TradeNo,
		PaidAt:    t.PaidAt,
		Status:    domain.SettlementStatus(t.Status),
		Attempts:  t.Attempts,
		NextRunAt: t.NextRunAt,
		LastErr:   t.LastErr,
	}
}
