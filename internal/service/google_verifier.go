package service

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"
)

// GoogleIdentity Google 验证通过后提取的身份信息
type GoogleIdentity struct {
	Email string
	Name  string
}

// GoogleVerifier Google ID Token 验证接口
// 以接口形式注入，便于测试替换为假实现
type GoogleVerifier interface {
	Verify(ctx context.Context, credential string) (*GoogleIdentity, error)
}

type googleVerifier struct {
	clientID string
}

// NewGoogleVerifier 创建基于 Google 公钥验证服务的 GoogleVerifier
// clientID 为本应用在 Google 注册的 OAuth 客户端 ID（audience 校验用）
func NewGoogleVerifier(clientID string) GoogleVerifier {
	return &googleVerifier{clientID: clientID}
}

func (v *googleVerifier) Verify(ctx context.Context, credential string) (*GoogleIdentity, error) {
	payload, err := idtoken.Validate(ctx, credential, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("验证 Google ID Token 失败: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("Google ID Token 缺少邮箱信息")
	}
	name, _ := payload.Claims["name"].(string)

	return &GoogleIdentity{Email: email, Name: name}, nil
}
