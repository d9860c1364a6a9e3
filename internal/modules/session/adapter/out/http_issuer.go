package out

import (
	"context"
	"fmt"

	"sehat/internal/modules/session/domain"
	"sehat/internal/platform/rest"
)

// HTTPIssuer calls the session-issuance endpoint of the gateway.
type HTTPIssuer struct {
	client *rest.Client
}

func NewHTTPIssuer(client *rest.Client) *HTTPIssuer {
	return &HTTPIssuer{client: client}
}

type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		IsPremium bool   `json:"isPremium"`
	} `json:"user"`
}

func (a *HTTPIssuer) Issue(ctx context.Context, email string, role domain.Role) (domain.Credentials, error) {
	var resp loginResponse
	if err := a.client.PostJSON(ctx, "/auth/login", loginRequest{Email: email, Role: string(role)}, &resp); err != nil {
		return domain.Credentials{}, err
	}
	parsedRole, err := domain.ParseRole(resp.User.Role)
	if err != nil {
		return domain.Credentials{}, fmt.Errorf("issuer response: %w", err)
	}
	return domain.Credentials{
		Token: resp.Token,
		Profile: domain.Profile{
			ID:        resp.User.ID,
			Name:      resp.User.Name,
			Email:     resp.User.Email,
			Role:      parsedRole,
			IsPremium: resp.User.IsPremium,
		},
	}, nil
}
