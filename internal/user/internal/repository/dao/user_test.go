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

package dao

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ecodeclub/minipay/internal/pkg/snowflake"
	testioc "github.com/ecodeclub/minipay/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type UserDAOTestSuite struct {
	suite.Suite
	dao UserDAO
}

func TestUserDAO(t *testing.T) {
	suite.Run(t, new(UserDAOTestSuite))
}

func (s *UserDAOTestSuite) SetupTest() {
	db := testioc.NewDB(s.T())
	require.NoError(s.T(), InitTables(db))
	g, err := snowflake.NewGenerator(1)
	require.NoError(s.T(), err)
	s.dao = NewGORMUserDAO(db, g)
}

func (s *UserDAOTestSuite) TestInsertAndFind() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Insert(ctx, User{
		Nickname:         "Tom",
		Mobile:           sql.NullString{String: "13800000000", Valid: true},
		WechatMiniOpenId: sql.NullString{String: "openid-1", Valid: true},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), snowflake.NodeOf(id))

	u, err := s.dao.FindById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tom", u.Nickname)
	assert.True(t, u.Ctime > 0)

	u, err = s.dao.FindByWechat(ctx, "openid-1")
	require.NoError(t, err)
	assert.Equal(t, id, u.Id)

	u, err = s.dao.FindByMobile(ctx, "13800000000")
	require.NoError(t, err)
	assert.Equal(t, id, u.Id)

	_, err = s.dao.FindByMobile(ctx, "13900000000")
	assert.ErrorIs(t, err, ErrDataNotFound)

	// 同一个 openid 不能注册两次
	_, err = s.dao.Insert(ctx, User{
		WechatMiniOpenId: sql.NullString{String: "openid-1", Valid: true},
	})
	assert.ErrorIs(t, err, ErrUserDuplicate)

	// 没有手机号的用户可以有多个
	_, err = s.dao.Insert(ctx, User{
		WechatMiniOpenId: sql.NullString{String: "openid-2", Valid: true},
	})
	require.NoError(t, err)
	_, err = s.dao.Insert(ctx, User{
		WechatMiniOpenId: sql.NullString{String: "openid-3", Valid: true},
	})
	require.NoError(t, err)
}

func (s *UserDAOTestSuite) TestUpdateNonZeroFields() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Insert(ctx, User{
		Nickname:         "Tom",
		Avatar:           "old avatar",
		WechatMiniOpenId: sql.NullString{String: "openid-1", Valid: true},
	})
	require.NoError(t, err)

	err = s.dao.UpdateNonZeroFields(ctx, User{
		Id:     id,
		Mobile: sql.NullString{String: "13800000000", Valid: true},
	})
	require.NoError(t, err)

	u, err := s.dao.FindById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tom", u.Nickname)
	assert.Equal(t, "old avatar", u.Avatar)
	assert.Equal(t, "13800000000", u.Mobile.String)
	assert.Equal(t, "openid-1", u.WechatMiniOpenId.String)
}
