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
	"errors"
	"time"

	"github.com/ecodeclub/minipay/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrUserDuplicate 这个算是 user 专属的
var ErrUserDuplicate = errors.New("用户已经注册")

//go:generate mockgen -source=./user.go -package=daomocks -destination=mocks/user.mock.go UserDAO
type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	UpdateNonZeroFields(ctx context.Context, u User) error
	FindByWechat(ctx context.Context, miniOpenId string) (User, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByMobile(ctx context.Context, mobile string) (User, error)
}

type GORMUserDAO struct {
	db    *egorm.Component
	idGen *snowflake.Generator
}

func NewGORMUserDAO(db *egorm.Component, idGen *snowflake.Generator) UserDAO {
	return &GORMUserDAO{
		db:    db,
		idGen: idGen,
	}
}

func (ud *GORMUserDAO) UpdateNonZeroFields(ctx context.Context, u User) error {
	u.Utime = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Updates(&u).Error
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	if u.Id == 0 {
		u.Id = ud.idGen.Next()
	}
	err := ud.db.WithContext(ctx).Create(&u).Error
	if isDuplicate(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindByWechat(ctx context.Context, miniOpenId string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "wechat_mini_open_id = ?", miniOpenId).Error
	return u, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByMobile(ctx context.Context, mobile string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "mobile = ?", mobile).Error
	return u, err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

type User struct {
	Id       int64 `gorm:"primaryKey;autoIncrement:false"`
	Nickname string
	Avatar   string
	Mobile   sql.NullString `gorm:"type:varchar(32);unique"`
	// 小程序登录和支付都用这个
	WechatMiniOpenId sql.NullString `gorm:"type:varchar(128);unique"`
	WechatUnionId    sql.NullString `gorm:"type:varchar(128)"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
