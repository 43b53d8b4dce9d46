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

	"github.com/ecodeclub/minipay/internal/user/internal/domain"
	"github.com/ecodeclub/minipay/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreateByWechat 查找或者初始化
	FindOrCreateByWechat(ctx context.Context, info domain.WechatInfo) (domain.User, error)

	// UpdateNonSensitiveInfo 更新非敏感数据，也就是昵称、头像和手机号
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// FindUserIDByMobile 返回小程序 openid，找不到的时候返回空字符串
	FindUserIDByMobile(ctx context.Context, mobile string) (string, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改 openid
	user.WechatInfo = domain.WechatInfo{}
	return svc.repo.Update(ctx, user)
}

func (svc *userService) FindOrCreateByWechat(ctx context.Context,
	info domain.WechatInfo) (domain.User, error) {
	// 大部分人都是老用户，也就是数据在我们这里是有的
	u, err := svc.repo.FindByWechat(ctx, info.MiniOpenId)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	nickname := shortuuid.New()[:4]
	id, err := svc.repo.Create(ctx, domain.User{
		WechatInfo: info,
		Nickname:   nickname,
	})
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发登录，别人先创建了
		return svc.repo.FindByWechat(ctx, info.MiniOpenId)
	}
	if err != nil {
		return domain.User{}, err
	}
	svc.logger.Info("新用户注册", elog.Int64("uid", id))
	return domain.User{
		Id:         id,
		Nickname:   nickname,
		WechatInfo: info,
	}, nil
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) FindUserIDByMobile(ctx context.Context, mobile string) (string, error) {
	openId, err := svc.repo.FindOpenIdByMobile(ctx, mobile)
	if repository.IsNotFound(err) {
		return "", nil
	}
	return openId, err
}
