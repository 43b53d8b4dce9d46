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
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ecodeclub/minipay/internal/payment/internal/domain"
	"github.com/ecodeclub/minipay/internal/payment/internal/event"
	evtmocks "github.com/ecodeclub/minipay/internal/payment/internal/event/mocks"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository"
	"github.com/ecodeclub/minipay/internal/payment/internal/repository/dao"
	svcmocks "github.com/ecodeclub/minipay/internal/payment/internal/service/mocks"
	"github.com/ecodeclub/minipay/internal/pkg/sequencenumber"
	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// 2023-01-01 12:00:00 北京时间
var fixedNow = time.Date(2023, 1, 1, 12, 0, 0, 0, domain.GatewayLocation)

const fixedEndTime = "20230101120000"

var errTimeout = errors.Join(ErrAmbiguousOutcome, context.DeadlineExceeded)

type testEnv struct {
	svc      *paymentService
	db       *gorm.DB
	repo     repository.PaymentRepository
	gateway  *svcmocks.MockGateway
	users    *svcmocks.MockUserDirectory
	producer *evtmocks.MockSettlementEventProducer
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller, cfg Config) testEnv {
	db := testioc.NewDB(t)
	require.NoError(t, dao.InitTables(db))
	repo := repository.NewPaymentRepository(dao.NewPaymentGORMDAO(db), dao.NewSettlementGORMDAO(db))
	gateway := svcmocks.NewMockGateway(ctrl)
	users := svcmocks.NewMockUserDirectory(ctrl)
	producer := evtmocks.NewMockSettlementEventProducer(ctrl)
	sn := sequencenumber.NewGeneratorWith(func() time.Time {
		return fixedNow
	}, func() string {
		return "nUfojcH2M5j2j3Tk5A1mf2"
	}, domain.GatewayLocation)
	svc := NewService(repo, gateway, users, producer, sn, cfg).(*paymentService)
	svc.nowFunc = func() time.Time {
		return fixedNow
	}
	return testEnv{
		svc:      svc,
		db:       db,
		repo:     repo,
		gateway:  gateway,
		users:    users,
		producer: producer,
	}
}

// createOrder 直接落库一个订单
func (e testEnv) createOrder(t *testing.T, tradeNo string, status domain.PaymentStatus, fee int64) {
	_, err := e.repo.Create(context.Background(), domain.PaymentOrder{
		TradeNo:  tradeNo,
		Status:   status,
		TotalFee: fee,
		UserID:   "openid-1",
		BizType:  "ORDER",
	})
	require.NoError(t, err)
}

func (e testEnv) order(t *testing.T, tradeNo string) domain.PaymentOrder {
	o, err := e.repo.FindByTradeNo(context.Background(), tradeNo)
	require.NoError(t, err)
	return o
}

func (e testEnv) settlementCount(t *testing.T) int64 {
	var cnt int64
	require.NoError(t, e.db.Model(&dao.SettlementTask{}).Count(&cnt).Error)
	return cnt
}

func okResult() domain.GatewayResult {
	return domain.GatewayResult{TransportOK: true, BusinessOK: true}
}

func TestPaymentService_Initiate(t *testing.T) {
	longDesc := strings.Repeat("报名费", 100)
	testCases := []struct {
		name   string
		cfg    Config
		mock   func(env testEnv)
		req    domain.InitiateRequest
		assert func(t *testing.T, env testEnv, res domain.Prepay)

		wantErr error
	}{
		{
			name: "创建成功",
			cfg:  Config{Attach: "minipay", NotifyURL: "https://example.com/pay/callback"},
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.PrepayRequest) (domain.PrepayResult, error) {
						assert.Equal(t, int64(500), req.Amount)
						assert.Equal(t, "fee", req.Description)
						assert.Equal(t, "openid-1", req.UserID)
						assert.Equal(t, "minipay", req.Attach)
						assert.Equal(t, DefaultClientIP, req.ClientIP)
						assert.Equal(t, "https://example.com/pay/callback", req.NotifyURL)
						assert.Equal(t, fixedNow.Add(300*time.Second), req.ExpireAt)
						return domain.PrepayResult{
							GatewayResult: okResult(),
							PrepayID:      "wx-prepay-1",
							Params:        domain.PaymentParams{NonceStr: "nonce-1", Package: "prepay_id=wx-prepay-1"},
						}, nil
					})
			},
			req: domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 500, Description: "fee"},
			assert: func(t *testing.T, env testEnv, res domain.Prepay) {
				assert.Len(t, res.TradeNo, sequencenumber.TradeNoLength)
				assert.Regexp(t, regexp.MustCompile(`^ORDER\d{14}M500-[0-9A-Za-z]+$`), res.TradeNo)
				assert.Equal(t, int64(500), res.Amount)
				assert.Equal(t, "nonce-1", res.Params.NonceStr)

				o := env.order(t, res.TradeNo)
				assert.Equal(t, domain.PaymentStatusPending, o.Status)
				assert.Equal(t, int64(500), o.TotalFee)
				assert.Equal(t, "nonce-1", o.Nonce)
				assert.Equal(t, "wx-prepay-1", o.PrepayID)
				assert.Equal(t, "minipay", o.Attach)
				assert.Equal(t, "ORDER", o.BizType)
				assert.Equal(t, int64(0), o.EndTime)
				assert.Equal(t, int64(0), env.settlementCount(t))
			},
		},
		{
			name: "金额四舍五入",
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.PrepayRequest) (domain.PrepayResult, error) {
						assert.Equal(t, int64(500), req.Amount)
						return domain.PrepayResult{GatewayResult: okResult(), PrepayID: "wx-prepay-1"}, nil
					})
			},
			req: domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 499.5},
			assert: func(t *testing.T, env testEnv, res domain.Prepay) {
				assert.Equal(t, int64(500), env.order(t, res.TradeNo).TotalFee)
			},
		},
		{
			name: "沙箱模式",
			cfg:  Config{Sandbox: true},
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.PrepayRequest) (domain.PrepayResult, error) {
						assert.Equal(t, SandboxAmount, req.Amount)
						return domain.PrepayResult{GatewayResult: okResult(), PrepayID: "wx-prepay-1"}, nil
					})
			},
			req: domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 500},
			assert: func(t *testing.T, env testEnv, res domain.Prepay) {
				assert.Equal(t, SandboxAmount, res.Amount)
				assert.Equal(t, SandboxAmount, env.order(t, res.TradeNo).TotalFee)
			},
		},
		{
			name: "描述按照字符截断",
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.PrepayRequest) (domain.PrepayResult, error) {
						assert.Equal(t, DefaultDescriptionLimit, utf8.RuneCountInString(req.Description))
						return domain.PrepayResult{GatewayResult: okResult(), PrepayID: "wx-prepay-1"}, nil
					})
			},
			req: domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 1, Description: longDesc},
			assert: func(t *testing.T, env testEnv, res domain.Prepay) {
				assert.True(t, utf8.ValidString(env.order(t, res.TradeNo).Description))
			},
		},
		{
			name:    "金额为0",
			mock:    func(env testEnv) {},
			req:     domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 0.4},
			wantErr: ErrAmountInvalid,
		},
		{
			name:    "金额超过上限",
			mock:    func(env testEnv) {},
			req:     domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: float64(DefaultAmountCeiling + 1)},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "业务类型非法",
			mock:    func(env testEnv) {},
			req:     domain.InitiateRequest{BizType: "OR-DER", UserID: "openid-1", Amount: 500},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "缺少用户",
			mock:    func(env testEnv) {},
			req:     domain.InitiateRequest{BizType: "ORDER", Amount: 500},
			wantErr: ErrInvalidArgument,
		},
		{
			name: "微信拒绝预支付",
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(domain.PrepayResult{GatewayResult: domain.GatewayResult{
						TransportOK: true,
						Code:        "PARAM_ERROR",
						Message:     "参数错误",
					}}, nil)
			},
			req:     domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 500},
			wantErr: ErrGatewayRejected,
		},
		{
			name: "没有返回预支付标识",
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(domain.PrepayResult{GatewayResult: okResult()}, nil)
			},
			req:     domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 500},
			wantErr: ErrGatewayRejected,
		},
		{
			name: "微信超时",
			mock: func(env testEnv) {
				env.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					Return(domain.PrepayResult{}, errTimeout)
			},
			req:     domain.InitiateRequest{BizType: "ORDER", UserID: "openid-1", Amount: 500},
			wantErr: ErrAmbiguousOutcome,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := newTestEnv(t, ctrl, tc.cfg)
			tc.mock(env)
			res, err := env.svc.Initiate(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				var cnt int64
				require.NoError(t, env.db.Model(&dao.PaymentOrder{}).Count(&cnt).Error)
				assert.Equal(t, int64(0), cnt)
				return
			}
			tc.assert(t, env, res)
		})
	}
}

func TestPaymentService_HandleNotification(t *testing.T) {
	const tradeNo = "ORDER20230101115500M500-nUfojcH"
	paidAt := fixedNow.UnixMilli()
	success := domain.Notification{
		OutTradeNo:    tradeNo,
		TotalFee:      500,
		TransportOK:   true,
		BusinessOK:    true,
		TransactionID: "wx-txn-1",
		EndTime:       fixedEndTime,
	}
	testCases := []struct {
		name   string
		before func(t *testing.T, env testEnv)
		mock   func(env testEnv)
		// 同一个通知投递多次
		times        int
		n            domain.Notification
		wantStatus   domain.PaymentStatus
		wantEndTime  int64
		wantTaskCnt  int64
		wantNotFound bool
	}{
		{
			name: "重复通知只推进一次",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
			},
			mock: func(env testEnv) {
				env.producer.EXPECT().Produce(gomock.Any(), event.SettlementEvent{
					TradeNo: tradeNo,
					PaidAt:  paidAt,
				}).Return(nil).Times(1)
			},
			times:       3,
			n:           success,
			wantStatus:  domain.PaymentStatusSuccess,
			wantEndTime: paidAt,
			wantTaskCnt: 1,
		},
		{
			name: "对账标记为未支付之后收到成功通知",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusNotPaid, 500)
			},
			mock: func(env testEnv) {
				env.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			times:       1,
			n:           success,
			wantStatus:  domain.PaymentStatusSuccess,
			wantEndTime: paidAt,
			wantTaskCnt: 1,
		},
		{
			name: "发送消息失败不影响应答",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
			},
			mock: func(env testEnv) {
				env.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock error"))
			},
			times:       1,
			n:           success,
			wantStatus:  domain.PaymentStatusSuccess,
			wantEndTime: paidAt,
			wantTaskCnt: 1,
		},
		{
			name: "金额不一致",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
			},
			mock:  func(env testEnv) {},
			times: 3,
			n: func() domain.Notification {
				n := success
				n.TotalFee = 499
				return n
			}(),
			wantStatus: domain.PaymentStatusPending,
		},
		{
			name: "失败通知不修改状态",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
			},
			mock:  func(env testEnv) {},
			times: 1,
			n: func() domain.Notification {
				n := success
				n.BusinessOK = false
				return n
			}(),
			wantStatus: domain.PaymentStatusPending,
		},
		{
			name: "已经退款的订单不会回到支付成功",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusRefund, 500)
			},
			mock:       func(env testEnv) {},
			times:      1,
			n:          success,
			wantStatus: domain.PaymentStatusRefund,
		},
		{
			name: "完成时间非法使用当前时间",
			before: func(t *testing.T, env testEnv) {
				env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
			},
			mock: func(env testEnv) {
				env.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			times: 1,
			n: func() domain.Notification {
				n := success
				n.EndTime = "2023-01-01"
				return n
			}(),
			wantStatus:  domain.PaymentStatusSuccess,
			wantEndTime: fixedNow.UnixMilli(),
			wantTaskCnt: 1,
		},
		{
			name:         "订单不存在",
			before:       func(t *testing.T, env testEnv) {},
			mock:         func(env testEnv) {},
			times:        1,
			n:            success,
			wantNotFound: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			env := newTestEnv(t, ctrl, Config{})
			tc.before(t, env)
			tc.mock(env)
			for i := 0; i < tc.times; i++ {
				ack := env.svc.HandleNotification(context.Background(), tc.n)
				assert.Equal(t, domain.SuccessAck, ack)
			}
			assert.Equal(t, tc.wantTaskCnt, env.settlementCount(t))
			if tc.wantNotFound {
				_, err := env.repo.FindByTradeNo(context.Background(), tradeNo)
				assert.ErrorIs(t, err, ErrOrderNotFound)
				return
			}
			o := env.order(t, tradeNo)
			assert.Equal(t, tc.wantStatus, o.Status)
			assert.Equal(t, int64(500), o.TotalFee)
			assert.Equal(t, tc.wantEndTime, o.EndTime)
			if tc.wantStatus == domain.PaymentStatusSuccess {
				assert.Equal(t, "wx-txn-1", o.TransactionID)
			}
		})
	}
}

func TestPaymentService_HandleNotificationConcurrently(t *testing.T) {
	const (
		tradeNo = "ORDER20230101115500M500-nUfojcH"
		workers = 20
	)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, Config{})
	env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
	env.producer.EXPECT().Produce(gomock.Any(), event.SettlementEvent{
		TradeNo: tradeNo,
		PaidAt:  fixedNow.UnixMilli(),
	}).Return(nil).Times(1)

	n := domain.Notification{
		OutTradeNo:    tradeNo,
		TotalFee:      500,
		TransportOK:   true,
		BusinessOK:    true,
		TransactionID: "wx-txn-1",
		EndTime:       fixedEndTime,
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ack := env.svc.HandleNotification(context.Background(), n)
			assert.Equal(t, domain.SuccessAck, ack)
		}()
	}
	wg.Wait()

	assert.Equal(t, domain.PaymentStatusSuccess, env.order(t, tradeNo).Status)
	assert.Equal(t, int64(1), env.settlementCount(t))
}

func TestPaymentService_HandleNotificationWithoutTransactionID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl, Config{})
	tradeNos := []string{"ORDER20230101115500M500-aaaaaaa", "ORDER20230101115500M500-bbbbbbb"}
	for _, tradeNo := range tradeNos {
		env.createOrder(t, tradeNo, domain.PaymentStatusPending, 500)
	}
	env.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil).Times(len(tradeNos))

	for _, tradeNo := range tradeNos {
		// 沙箱模拟回调的时候没有微信支付订单号
		env.svc.HandleNotification(context.Background(), domain.Notification{
			OutTradeNo:  tradeNo,
			TotalFee:    500,
			TransportOK: true,
			BusinessOK:  true,
			EndTime:     fixedEndTime,
		})
	}
	for _, tradeNo := range tradeNos {
		o := env.order(t, tradeNo)
		assert.Equal(t, domain.PaymentStatusSuccess, o.Status)
		assert.Empty(t, o.TransactionID)
	}
	assert.Equal(t, int64(len(tradeNos)), env.settlementCount(t))
}
