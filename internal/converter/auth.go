package converter

import (
	"brand_site/internal/api/dto/auth"
	"brand_site/internal/model"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
}

func LoginRequestToUserModel(req *auth.LoginRequest) *model.User {
	return &model.User{
		Email:    req.Email,
		Password: req.Password,
	}
}
