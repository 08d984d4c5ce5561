package http

import (
	"fintrack-api/internal/auth"
)

type signUpReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req signUpReq) toInput() auth.SignUpInput {
	return auth.SignUpInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	}
}

type signInReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{
		Username: req.Username,
		Password: req.Password,
	}
}

type tokenPairResp struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresAt    int64  `json:"expiresAt"`
}

func (h Handler) newTokenPairResp(out auth.AuthOutput) tokenPairResp {
	return tokenPairResp{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    out.ExpiresAt,
	}
}
