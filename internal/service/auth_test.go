package service

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ibeloyar/fueldispatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedUsers = []model.User{
	{Email: "", Password: "", Name: "fila vacía"},
	{Email: "Ana@Gas.MX", Password: "1234", Name: "Ana", Role: "Gerente", Stations: "E01, E02"},
	{Email: "ana@gas.mx", Password: "abcd", Name: "Ana Admin", Role: "Admin", Stations: "ALL"},
}

func TestService_Login_Success_CaseInsensitiveEmail(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().
		GetUsersByEmail(gomock.Any(), "ANA@gas.mx").
		Return(storedUsers, nil)

	user, apiErr := svc.Login(context.Background(), model.LoginDTO{Email: "ANA@gas.mx", Password: "1234"})

	require.Nil(t, apiErr)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "Gerente", user.Role)
	assert.Equal(t, []string{"E01", "E02"}, user.Stations)
}

func TestService_Login_SecondRowMatchesPassword(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().
		GetUsersByEmail(gomock.Any(), "ana@gas.mx").
		Return(storedUsers, nil)

	user, apiErr := svc.Login(context.Background(), model.LoginDTO{Email: "ana@gas.mx", Password: "abcd"})

	require.Nil(t, apiErr)
	assert.Equal(t, "Admin", user.Role)
	assert.Equal(t, []string{"ALL"}, user.Stations)
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		input model.LoginDTO
	}{
		{"wrong password", model.LoginDTO{Email: "ana@gas.mx", Password: "12345"}},
		{"password case differs", model.LoginDTO{Email: "ana@gas.mx", Password: "ABCD"}},
		{"unknown email", model.LoginDTO{Email: "otro@gas.mx", Password: "1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newTestService(t)

			deps.storage.EXPECT().
				GetUsersByEmail(gomock.Any(), tt.input.Email).
				Return(storedUsers, nil)

			user, apiErr := svc.Login(context.Background(), tt.input)

			assert.Nil(t, user)
			require.NotNil(t, apiErr)
			assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
			assert.Equal(t, model.ErrInvalidCredentialsMessage, apiErr.Message)
		})
	}
}

func TestService_Login_EmptyInput(t *testing.T) {
	svc, _ := newTestService(t)

	user, apiErr := svc.Login(context.Background(), model.LoginDTO{Email: "", Password: ""})

	assert.Nil(t, user)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Code)
	assert.Equal(t, model.ErrInvalidCredentials.Error(), apiErr.Message)
}

func TestService_Login_StoreUnavailable(t *testing.T) {
	svc, deps := newTestService(t)

	deps.storage.EXPECT().
		GetUsersByEmail(gomock.Any(), "ana@gas.mx").
		Return(nil, fmt.Errorf("get users by email: %w", model.ErrStoreUnavailable))

	user, apiErr := svc.Login(context.Background(), model.LoginDTO{Email: "ana@gas.mx", Password: "1234"})

	assert.Nil(t, user)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
	assert.Equal(t, model.ErrStoreUnavailableMessage, apiErr.Message)
}
