package commerce

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{
		Email:    email,
		Password: password,
	}, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}

func (c *Client) Register(ctx context.Context, email, name, password string) (AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", registerRequest{
		Email:    email,
		Name:     name,
		Password: password,
	}, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}
