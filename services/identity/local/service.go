// Package localidentity is an in-process identity provider used in DEV
// and in tests. Accounts live in memory, sessions are signed JWTs.
package localidentity

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/dikshant1602/wandwrite/core"
)

var (
	errInvalidCredentials = errors.New("invalid email or password")
	errAccountExists      = errors.New("an account with this email already exists")
)

type account struct {
	id           string
	email        string
	passwordHash []byte
}

type service struct {
	mu      sync.RWMutex
	byEmail map[string]*account
	byID    map[string]*account
	revoked map[string]struct{} // session ids invalidated by SignOut

	secret []byte
	ttl    time.Duration
}

var _ core.IdentityProvider = (*service)(nil)

func NewService(conf *core.Config) core.IdentityProvider {
	return &service{
		byEmail: make(map[string]*account),
		byID:    make(map[string]*account),
		revoked: make(map[string]struct{}),
		secret:  conf.SecretKey,
		ttl:     conf.SessionTTL,
	}
}

func (svc *service) CreateAccount(_ context.Context, email, password string) (core.Session, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, ok := svc.byEmail[email]; ok {
		return core.Session{}, core.NewAuthError(core.AuthErrAccountExists, errAccountExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return core.Session{}, errors.Wrap(err, "hashing password")
	}
	acc := &account{
		id:           uuid.NewString(),
		email:        email,
		passwordHash: hash,
	}
	svc.byEmail[email] = acc
	svc.byID[acc.id] = acc

	return svc.mintSession(acc)
}

func (svc *service) SignIn(_ context.Context, email, password string) (core.Session, error) {
	svc.mu.RLock()
	acc, ok := svc.byEmail[email]
	svc.mu.RUnlock()

	if !ok {
		return core.Session{}, core.NewAuthError(core.AuthErrInvalidCredentials, errInvalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return core.Session{}, core.NewAuthError(core.AuthErrInvalidCredentials, errInvalidCredentials)
	}
	return svc.mintSession(acc)
}

func (svc *service) SignOut(_ context.Context, token string) error {
	claims, err := svc.parseToken(token)
	if err != nil {
		return err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if _, ok := svc.revoked[claims.ID]; ok {
		return core.ErrNoSession
	}
	if _, ok := svc.byID[claims.Subject]; !ok {
		return core.ErrNoSession
	}
	svc.revoked[claims.ID] = struct{}{}
	return nil
}

func (svc *service) CurrentSession(_ context.Context, token string) (core.Session, error) {
	claims, err := svc.parseToken(token)
	if err != nil {
		return core.Session{}, err
	}

	svc.mu.RLock()
	defer svc.mu.RUnlock()

	if _, ok := svc.revoked[claims.ID]; ok {
		return core.Session{}, core.ErrNoSession
	}
	acc, ok := svc.byID[claims.Subject]
	if !ok {
		return core.Session{}, core.ErrNoSession
	}
	return core.Session{AccountID: acc.id, Email: acc.email, Token: token}, nil
}

func (svc *service) DeleteAccount(_ context.Context, accountID string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	acc, ok := svc.byID[accountID]
	if !ok {
		return errors.Errorf("account %s not found", accountID)
	}
	delete(svc.byID, accountID)
	delete(svc.byEmail, acc.email)
	return nil
}

func (svc *service) mintSession(acc *account) (core.Session, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   acc.id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(svc.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.secret)
	if err != nil {
		return core.Session{}, errors.Wrap(err, "signing session token")
	}
	return core.Session{AccountID: acc.id, Email: acc.email, Token: token}, nil
}

func (svc *service) parseToken(token string) (*jwt.RegisteredClaims, error) {
	claims := new(jwt.RegisteredClaims)
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return svc.secret, nil
	})
	if err != nil {
		return nil, core.ErrNoSession
	}
	return claims, nil
}
