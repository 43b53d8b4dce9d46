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
	"errors"

	"github.com/ecodeclub/minipay/internal/user/internal/domain"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/cache"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

// UserRepository 用户相关的存储
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	// FindByWechat 按照小程序 openid 来查询
	FindByWechat(ctx context.Context, miniOpenId string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	// FindOpenIdByMobile 找不到的时候返回 ErrUserNotFound
	FindOpenIdByMobile(ctx context.Context, mobile string) (string, error)
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

// NewCachedUserRepository 支持缓存的实现
func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindByWechat(ctx context.Context,
	miniOpenId string) (domain.User, error) {
	u, err := ur.dao.FindByWechat(ctx, miniOpenId)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, err
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindOpenIdByMobile(ctx context.Context, mobile string) (string, error) {
	openId, err := ur.cache.GetOpenIdByMobile(ctx, mobile)
	if err == nil && openId != "" {
		return openId, nil
	}
	ue, err := ur.dao.FindByMobile(ctx, mobile)
	if err != nil {
		return "", err
	}
	openId = ue.WechatMiniOpenId.String
	if openId == "" {
		// 还没有用小程序登录过
		return "", ErrUserNotFound
	}
	if er := ur.cache.SetOpenIdByMobile(ctx, mobile, openId); er != nil {
		ur.logger.Warn("设置手机号缓存失败", elog.FieldErr(er), elog.String("mobile", mobile))
	}
	return openId, nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Mobile: sql.NullString{
			String: u.Mobile,
			Valid:  u.Mobile != "",
		},
		WechatMiniOpenId: sql.NullString{
			String: u.WechatInfo.MiniOpenId,
			Valid:  u.WechatInfo.MiniOpenId != "",
		},
		WechatUnionId: sql.NullString{
			String: u.WechatInfo.UnionId,
			Valid:  u.WechatInfo.UnionId != "",
		},
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		Nickname: ue.Nickname,
		Avatar:   ue.Avatar,
		Mobile:   ue.Mobile.String,
		WechatInfo: domain.WechatInfo{
			MiniOpenId: ue.WechatMiniOpenId.String,
			UnionId:    ue.WechatUnionId.String,
		},
		Ctime: ue.Ctime,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
