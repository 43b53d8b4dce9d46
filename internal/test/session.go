package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

// SessionKey 测试中 session 在 gin.Context 里面的键
const SessionKey = "_session"

var errNoSession = errors.New("测试 session 不存在")

// 测试里面不走 redis，直接从 gin.Context 里面拿 session
func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

var _ session.Provider = &SessionProvider{}

type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	sess := session.NewMemorySession(session.Claims{Uid: uid, Data: jwtData})
	ctx.Set(SessionKey, sess)
	return sess, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get(SessionKey)
	if !ok || val == nil {
		return nil, errNoSession
	}
	return val.(session.Session), nil
}

func (s *SessionProvider) Destroy(ctx *gctx.Context) error {
	ctx.Set(SessionKey, nil)
	return nil
}

func (s *SessionProvider) UpdateClaims(ctx *gctx.Context, claims session.Claims) error {
	ctx.Set(SessionKey, session.NewMemorySession(claims))
	return nil
}

func (s *SessionProvider) RenewAccessToken(ctx *gctx.Context) error {
	return nil
}

// InjectSession 模拟已经登录的用户
func InjectSession(claims session.Claims) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(SessionKey, session.NewMemorySession(claims))
	}
}
