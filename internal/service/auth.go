package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/ibeloyar/fueldispatch/internal/model"
)

// Login - пароль сравнивается как есть, без хеширования
func (s *Service) Login(ctx context.Context, input model.LoginDTO) (*model.UserInfo, *model.APIError) {
	if input.Email == "" || input.Password == "" {
		return nil, invalidCredentials()
	}

	users, err := s.storage.GetUsersByEmail(ctx, input.Email)
	if err != nil {
		return nil, s.storeError("login", err)
	}

	for _, user := range users {
		if user.Email == "" || user.Password == "" {
			continue
		}

		if strings.EqualFold(user.Email, input.Email) && user.Password == input.Password {
			return &model.UserInfo{
				Name:     user.Name,
				Role:     user.Role,
				Stations: model.SplitScope(user.Stations),
			}, nil
		}
	}

	return nil, invalidCredentials()
}

func invalidCredentials() *model.APIError {
	return newAPIError(http.StatusUnauthorized, model.ErrInvalidCredentials.Error())
}
