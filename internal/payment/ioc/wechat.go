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

package ioc

import (
	"context"

	"github.com/ecodeclub/minipay/internal/payment"
	"github.com/ecodeclub/minipay/internal/payment/internal/service/wechat"
	"github.com/gotomicro/ego/core/econf"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/auth/verifiers"
	"github.com/wechatpay-apiv3/wechatpay-go/core/downloader"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/jsapi"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
)

func InitWechatClient(cfg WechatConfig) *core.Client {
	// 商户私钥用来生成请求的签名
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(cfg.KeyPath)
	if err != nil {
		panic(err)
	}
	// 自动下载并且定时更新平台证书，回调验签也依赖这个
	client, err := core.NewClient(
		context.Background(),
		option.WithWechatPayAutoAuthCipher(
			cfg.MchID, cfg.MchSerialNum,
			mchPrivateKey, cfg.MchKey),
	)
	if err != nil {
		panic(err)
	}
	return client
}

func InitGateway(cli *core.Client, cfg WechatConfig) payment.Gateway {
	return wechat.NewGateway(
		&jsapi.JsapiApiService{Client: cli},
		&refunddomestic.RefundsApiService{Client: cli},
		cfg.AppID, cfg.MchID)
}

func InitWechatNotifyHandler(cfg WechatConfig) payment.NotifyHandler {
	certificateVisitor := downloader.MgrInstance().GetCertificateVisitor(cfg.MchID)
	// 使用 apiv3 key、证书访问器初始化 notify.Handler
	handler, err := notify.NewRSANotifyHandler(cfg.MchKey,
		verifiers.NewSHA256WithRSAVerifier(certificateVisitor))
	if err != nil {
		panic(err)
	}
	return handler
}

func InitWechatConfig() WechatConfig {
	var cfg WechatConfig
	err := econf.UnmarshalKey("wechat.payment", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitPaymentConfig 回调地址跟着商户配置走
func InitPaymentConfig(wcfg WechatConfig) payment.Config {
	var cfg payment.Config
	err := econf.UnmarshalKey("payment", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.NotifyURL == "" {
		cfg.NotifyURL = wcfg.PaymentNotifyURL
	}
	return cfg.WithDefaults()
}

type WechatConfig struct {
	AppID        string `yaml:"appID"`
	MchID        string `yaml:"mchID"`
	MchKey       string `yaml:"mchKey"`
	MchSerialNum string `yaml:"mchSerialNum"`

	// 商户私钥
	KeyPath string `yaml:"keyPath"`

	PaymentNotifyURL string `yaml:"paymentNotifyURL"`
}
