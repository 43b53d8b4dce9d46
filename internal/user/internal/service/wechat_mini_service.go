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
	"net/http"

	"github.com/ecodeclub/ekit/net/httpx"
	"github.com/ecodeclub/minipay/internal/user/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./wechat_mini_service.go -package=svcmocks -destination=mocks/wechat_mini_service.mock.go OAuth2Service
type OAuth2Service interface {
	// Verify 用小程序 wx.login 拿到的 code 换取 openid
	Verify(ctx context.Context, code string) (domain.WechatInfo, error)
}

type Result struct {
	ErrCode int64  `json:"errcode"`
	ErrMsg  string `json:"errmsg"`

	OpenId     string `json:"openid"`
	UnionId    string `json:"unionid"`
	SessionKey string `json:"session_key"`
}

type WechatMiniService struct {
	appId     string
	appSecret string
	baseURL   string
	logger    *elog.Component
	client    *http.Client
}

func NewWechatMiniService(appId string, appSecret string) *WechatMiniService {
	return &WechatMiniService{
		appId:     appId,
		appSecret: appSecret,
		baseURL:   "https://api.weixin.qq.com/sns/jscode2session",
		logger:    elog.DefaultLogger,
		client:    http.DefaultClient,
	}
}

func (s *WechatMiniService) Verify(ctx context.Context, code string) (domain.WechatInfo, error) {
	var res Result
	err := httpx.NewRequest(ctx, http.MethodGet, s.baseURL).
		Client(s.client).
		AddParam("appid", s.appId).
		AddParam("secret", s.appSecret).AddParam("js_code", code).
		AddParam("grant_type", "authorization_code").Do().
		JSONScan(&res)
	if err != nil {
		return domain.WechatInfo{}, err
	}
	if res.ErrCode != 0 {
		s.logger.Error("小程序登录失败", elog.Int64("errcode", res.ErrCode), elog.String("errmsg", res.ErrMsg))
		return domain.WechatInfo{},
			fmt.Errorf("小程序登录失败 %d, %s", res.ErrCode, res.ErrMsg)
	}
	return domain.WechatInfo{
		MiniOpenId: res.OpenId,
		UnionId:    res.UnionId,
	}, nil
}
