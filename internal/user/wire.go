//go:build wireinject

package user

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/minipay/internal/user/internal/repository"
	"github.com/ecodeclub/minipay/internal/user/internal/repository/cache"
	"github.com/ecodeclub/minipay/internal/user/internal/service"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initConfig,
	initIDGenerator,
	initDAO,
	initHandler,
	initWechatMiniOAuthService,
	cache.NewUserECache,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}
