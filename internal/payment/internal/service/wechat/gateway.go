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

package wechat

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
)

const (
	outcomeOK        = "ok"
	outcomeRejected  = "rejected"
	outcomeTransport = "transport_error"
	outcomeAmbiguous = "ambiguous"
)

var gatewayCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "wechat_pay_gateway_calls_total",
	Help: "微信支付接口调用次数",
}, []string{"op", "outcome"})

//go:generate mockgen -source=./gateway.go -package=wechatmocks -destination=./mocks/gateway.mock.go JSAPIService RefundService
type JSAPIService interface {
	PrepayWithRequestPayment(ctx context.Context, req jsapi.PrepayRequest) (resp *jsapi.PrepayWithRequestPaymentResponse, result *core.APIResult, err error)
	QueryOrderByOutTradeNo(ctx context.Context, req jsapi.QueryOrderByOutTradeNoRequest) (resp *payments.Transaction, result *core.APIResult, err error)
	CloseOrder(ctx context.Context, req jsapi.CloseOrderRequest) (result *core.APIResult, err error)
}

type RefundService interface {
	Create(ctx context.Context, req refunddomestic.CreateRequest) (resp *refunddomestic.Refund, result *core.APIResult, err error)
}

var _ service.Gateway = (*Gateway)(nil)

// Gateway 小程序 JSAPI 支付
// 返回的 error 只有 service.ErrAmbiguousOutcome 一种，其余失败都体现在结果里面
type Gateway struct {
	js     JSAPIService
	refund RefundService
	appID  string
	mchID  string
	l      *elog.Component
}

func NewGateway(js JSAPIService, refund RefundService, appID, mchID string) *Gateway {
	return &Gateway{
		js:     js,
		refund: refund,
		appID:  appID,
		mchID:  mchID,
		l:      elog.DefaultLogger.With(elog.FieldComponent("WechatGateway")),
	}
}

func (g *Gateway) CreateOrder(ctx context.Context, req domain.PrepayRequest) (domain.PrepayResult, error) {
	resp, _, err := g.js.PrepayWithRequestPayment(ctx, jsapi.PrepayRequest{
		Appid:       core.String(g.appID),
		Mchid:       core.String(g.mchID),
		Description: core.String(req.Description),
		OutTradeNo:  core.String(req.TradeNo),
		TimeExpire:  core.Time(req.ExpireAt),
		Attach:      core.String(req.Attach),
		NotifyUrl:   core.String(req.NotifyURL),
		Amount: &jsapi.Amount{
			Currency: core.String("CNY"),
			Total:    core.Int64(req.Amount),
		},
		Payer:     &jsapi.Payer{Openid: core.String(req.UserID)},
		SceneInfo: &jsapi.SceneInfo{PayerClientIp: core.String(req.ClientIP)},
	})
	base, err := g.result("prepay", err)
	if err != nil || !base.OK() {
		return domain.PrepayResult{GatewayResult: base}, err
	}
	base.Raw = resp
	return domain.PrepayResult{
		GatewayResult: base,
		PrepayID:      value(resp.PrepayId),
		Params: domain.PaymentParams{
			AppID:     value(resp.Appid),
			TimeStamp: value(resp.TimeStamp),
			NonceStr:  value(resp.NonceStr),
			Package:   value(resp.Package),
			SignType:  value(resp.SignType),
			PaySign:   value(resp.PaySign),
		},
	}, nil
}

func (g *Gateway) QueryOrder(ctx context.Context, tradeNo string) (domain.TradeQueryResult, error) {
	txn, _, err := g.js.QueryOrderByOutTradeNo(ctx, jsapi.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(tradeNo),
		Mchid:      core.String(g.mchID),
	})
	base, err := g.result("query", err)
	if err != nil || !base.OK() {
		return domain.TradeQueryResult{GatewayResult: base}, err
	}
	base.Raw = txn
	res := domain.TradeQueryResult{
		GatewayResult: base,
		TradeState:    value(txn.TradeState),
		TransactionID: value(txn.TransactionId),
		EndTime:       g.convertTime(value(txn.SuccessTime)),
	}
	if txn.Amount != nil {
		res.TotalFee = value(txn.Amount.Total)
	}
	return res, nil
}

func (g *Gateway) Refund(ctx context.Context, req domain.RefundRequest) (domain.RefundResult, error) {
	resp, _, err := g.refund.Create(ctx, refunddomestic.CreateRequest{
		OutTradeNo:  core.String(req.TradeNo),
		OutRefundNo: core.String(req.RefundNo),
		Reason:      core.String(req.Reason),
		Amount: &refunddomestic.AmountReq{
			Refund:   core.Int64(req.Amount),
			Total:    core.Int64(req.Total),
			Currency: core.String("CNY"),
		},
	})
	base, err := g.result("refund", err)
	if err != nil || !base.OK() {
		return domain.RefundResult{GatewayResult: base}, err
	}
	base.Raw = resp
	return domain.RefundResult{
		GatewayResult: base,
		RefundID:      value(resp.RefundId),
	}, nil
}

func (g *Gateway) CloseOrder(ctx context.Context, tradeNo string) (domain.GatewayResult, error) {
	_, err := g.js.CloseOrder(ctx, jsapi.CloseOrderRequest{
		OutTradeNo: core.String(tradeNo),
		Mchid:      core.String(g.mchID),
	})
	base, err := g.result("close", err)
	if err == nil && base.OK() {
		base.Raw = map[string]string{"out_trade_no": tradeNo}
	}
	return base, err
}

// result 把 SDK 的错误归类
func (g *Gateway) result(op string, err error) (domain.GatewayResult, error) {
	if err == nil {
		gatewayCalls.WithLabelValues(op, outcomeOK).Inc()
		return domain.GatewayResult{TransportOK: true, BusinessOK: true}, nil
	}
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		gatewayCalls.WithLabelValues(op, outcomeRejected).Inc()
		return domain.GatewayResult{
			TransportOK: true,
			Code:        apiErr.Code,
			Message:     apiErr.Message,
			Raw:         apiErr.Body,
		}, nil
	}
	if isTimeout(err) {
		gatewayCalls.WithLabelValues(op, outcomeAmbiguous).Inc()
		return domain.GatewayResult{Message: err.Error()}, errors.Join(service.ErrAmbiguousOutcome, err)
	}
	gatewayCalls.WithLabelValues(op, outcomeTransport).Inc()
	return domain.GatewayResult{Message: err.Error(), Raw: err.Error()}, nil
}

// convertTime 微信返回的是 RFC3339 格式，转成 20060102150405
func (g *Gateway) convertTime(val string) string {
	if val == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		g.l.Warn("解析微信支付完成时间失败", elog.FieldErr(err), elog.String("success_time", val))
		return ""
	}
	return domain.FormatGatewayTime(t)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func value[T any](ptr *T) T {
	var t T
	if ptr == nil {
		return t
	}
	return *ptr
}
