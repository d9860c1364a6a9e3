package out

import (
	"context"
	"strings"

	"sehat/internal/modules/session/domain"
	"sehat/internal/platform/id"
)

// LocalIssuer synthesizes credentials without a network. Offline degraded
// mode only; the token it mints is a placeholder and authenticates nothing.
type LocalIssuer struct {
	idGen id.Generator
}

func NewLocalIssuer(idGen id.Generator) *LocalIssuer {
	return &LocalIssuer{idGen: idGen}
}

func (a *LocalIssuer) Issue(_ context.Context, email string, role domain.Role) (domain.Credentials, error) {
	name := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		name = email[:at]
	}
	return domain.Credentials{
		Token: "offline-" + a.idGen.New(),
		Profile: domain.Profile{
			ID:    "U-" + a.idGen.New(),
			Name:  name,
			Email: email,
			Role:  role,
		},
	}, nil
}
