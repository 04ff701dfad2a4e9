package http

import "github.com/ibeloyar/fueldispatch/internal/model"

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginResponse struct {
	Success bool            `json:"success"`
	User    *model.UserInfo `json:"user"`
}

type scheduleBlockResponse struct {
	Success        bool `json:"success"`
	ProcessedCount int  `json:"processedCount"`
}
