// Package firebaseidentity adapts Firebase Auth, the identity provider
// the production deployment delegates credentials and sessions to.
package firebaseidentity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/dikshant1602/wandwrite/core"
)

// signInURL is the Identity Toolkit password grant; the admin SDK
// deliberately has no password sign-in, so this one call goes over REST.
const signInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type service struct {
	auth   *fbauth.Client
	apiKey string
	httpc  *http.Client
}

var _ core.IdentityProvider = (*service)(nil)

func NewService(ctx context.Context, conf *core.Config) (core.IdentityProvider, error) {
	var opts []option.ClientOption
	if conf.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(conf.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Firebase.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase app")
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "initializing firebase auth client")
	}
	return &service{
		auth:   client,
		apiKey: conf.Firebase.WebAPIKey,
		httpc:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (svc *service) CreateAccount(ctx context.Context, email, password string) (core.Session, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	rec, err := svc.auth.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return core.Session{}, core.NewAuthError(core.AuthErrAccountExists, err)
		}
		return core.Session{}, core.NewAuthError(core.AuthErrNetwork, err)
	}

	// sign the fresh account in so the caller holds a session
	sess, err := svc.SignIn(ctx, email, password)
	if err != nil {
		return core.Session{}, err
	}
	sess.AccountID = rec.UID
	return sess, nil
}

func (svc *service) SignIn(ctx context.Context, email, password string) (core.Session, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return core.Session{}, errors.Wrap(err, "encoding sign-in payload")
	}

	url := fmt.Sprintf("%s?key=%s", signInURL, svc.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return core.Session{}, errors.Wrap(err, "building sign-in request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.httpc.Do(req)
	if err != nil {
		return core.Session{}, core.NewAuthError(core.AuthErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		if resp.StatusCode >= 500 {
			return core.Session{}, core.NewAuthError(core.AuthErrNetwork, errors.Errorf("identity provider: %s", body.Error.Message))
		}
		return core.Session{}, core.NewAuthError(core.AuthErrInvalidCredentials, errors.New("invalid email or password"))
	}

	var body struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
		IDToken string `json:"idToken"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return core.Session{}, errors.Wrap(err, "decoding sign-in response")
	}
	return core.Session{AccountID: body.LocalID, Email: body.Email, Token: body.IDToken}, nil
}

func (svc *service) SignOut(ctx context.Context, token string) error {
	tok, err := svc.auth.VerifyIDToken(ctx, token)
	if err != nil {
		return core.ErrNoSession
	}
	if err = svc.auth.RevokeRefreshTokens(ctx, tok.UID); err != nil {
		return core.NewAuthError(core.AuthErrNetwork, err)
	}
	return nil
}

func (svc *service) CurrentSession(ctx context.Context, token string) (core.Session, error) {
	tok, err := svc.auth.VerifyIDToken(ctx, token)
	if err != nil {
		return core.Session{}, core.ErrNoSession
	}
	sess := core.Session{AccountID: tok.UID, Token: token}
	if email, ok := tok.Claims["email"].(string); ok {
		sess.Email = email
	}
	return sess, nil
}

func (svc *service) DeleteAccount(ctx context.Context, accountID string) error {
	if err := svc.auth.DeleteUser(ctx, accountID); err != nil {
		return core.NewAuthError(core.AuthErrNetwork, err)
	}
	return nil
}
