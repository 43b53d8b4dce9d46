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

package integration

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/minipay/internal/test"
	"github.com/ecodeclub/minipay/internal/user/internal/domain"
	"github.com/ecodeclub/minipay/internal/user/internal/integration/startup"
	cachemocks "github.com/ecodeclub/minipay/internal/user/internal/repository/cache/mocks"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/dao"
	svcmocks "github.com/ecodeclub/minipay/internal/user/internal/service/mocks"
	"github.com/ecodeclub/minipay/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = int64(123)

type HandleTestSuite struct {
	suite.Suite
	db            *egorm.Component
	server        *egin.Component
	mockWeMiniSvc *svcmocks.MockOAuth2Service
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandleTestSuite))
}

func (s *HandleTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	c := cachemocks.NewMockUserCache(ctrl)
	c.EXPECT().Get(gomock.Any(), gomock.Any()).Return(domain.User{}, errors.New("key not found")).AnyTimes()
	c.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	c.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockWeMiniSvc = svcmocks.NewMockOAuth2Service(ctrl)

	var hdl *web.Handler
	hdl, s.db = startup.InitHandler(s.T(), s.mockWeMiniSvc, c)
	econf.Set("server", map[string]any{"debug": true})
	server := egin.Load("server").Build()
	server.Use(test.InjectSession(session.Claims{
		Uid: testUID,
	}))
	hdl.PrivateRoutes(server.Engine)
	hdl.PublicRoutes(server.Engine)
	s.server = server
}

func (s *HandleTestSuite) TestEditProfile() {
	t := s.T()
	err := s.db.Create(&dao.User{
		Id:               testUID,
		Nickname:         "old name",
		Avatar:           "old avatar",
		WechatMiniOpenId: sql.NullString{String: "openid-1", Valid: true},
	}).Error
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost,
		"/users/profile", bytes.NewBuffer([]byte(`{"nickname": "new name", "mobile": "13800000000"}`)))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.MustScan().Msg)

	req, err = http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	profileRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(profileRecorder, req)
	require.Equal(t, http.StatusOK, profileRecorder.Code)
	assert.Equal(t, web.Profile{
		Id:       testUID,
		Nickname: "new name",
		Avatar:   "old avatar",
		Mobile:   "13800000000",
	}, profileRecorder.MustScan().Data)
}

func (s *HandleTestSuite) TestMiniCallback() {
	testCases := []struct {
		name     string
		mock     func()
		wantCode int
	}{
		{
			name: "登录成功",
			mock: func() {
				s.mockWeMiniSvc.EXPECT().Verify(gomock.Any(), "code-1").
					Return(domain.WechatInfo{MiniOpenId: "openid-1"}, nil)
			},
			wantCode: 0,
		},
		{
			name: "code 非法",
			mock: func() {
				s.mockWeMiniSvc.EXPECT().Verify(gomock.Any(), "code-1").
					Return(domain.WechatInfo{}, errors.New("小程序登录失败 40029, invalid code"))
			},
			wantCode: 501002,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.mock()
			req, err := http.NewRequest(http.MethodPost,
				"/oauth2/wechat/mini/callback", bytes.NewBuffer([]byte(`{"code": "code-1"}`)))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.True(t, res.Data.Id > 0)
			}
		})
	}
}

func (s *HandleTestSuite) TestMockLogin() {
	t := s.T()
	body, err := json.Marshal(web.MockLoginReq{
		OpenId:   "openid-mock",
		Nickname: "Jerry",
		Mobile:   "13900000000",
	})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, "/users/mock_login", bytes.NewBuffer(body))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	profile := recorder.MustScan().Data
	assert.Equal(t, "Jerry", profile.Nickname)
	assert.Equal(t, "13900000000", profile.Mobile)

	var u dao.User
	require.NoError(t, s.db.Where("wechat_mini_open_id = ?", "openid-mock").First(&u).Error)
	assert.Equal(t, profile.Id, u.Id)
	assert.Equal(t, "13900000000", u.Mobile.String)

	// 缺少 openid
	req, err = http.NewRequest(http.MethodPost, "/users/mock_login", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, 401001, recorder.MustScan().Code)
}
