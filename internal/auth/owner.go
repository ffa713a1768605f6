// Package auth resolves the identity every service call is scoped to.
package auth

import (
	"errors"
	"strings"
)

var ErrUnauthenticated = errors.New("no owner configured: run 'caja' once to set one up or export CAJA_OWNER")

// Resolver returns the authenticated owner id.
type Resolver interface {
	Owner() (string, error)
}

// StaticResolver serves the owner configured for this installation.
type StaticResolver struct {
	owner string
}

func NewStaticResolver(owner string) *StaticResolver {
	return &StaticResolver{owner: strings.TrimSpace(owner)}
}

func (r *StaticResolver) Owner() (string, error) {
	if r.owner == "" {
		return "", ErrUnauthenticated
	}
	return r.owner, nil
}
