package main

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/dikshant1602/wandwrite/core"
	"github.com/dikshant1602/wandwrite/core/request"
	"github.com/dikshant1602/wandwrite/core/user"
	localidentity "github.com/dikshant1602/wandwrite/services/identity/local"
	dummypush "github.com/dikshant1602/wandwrite/services/push/dummy"
	inmemdb "github.com/dikshant1602/wandwrite/storage/document/inmem"
)

type nopLogger struct{}

func (nopLogger) Enable(bool)                  {}
func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func setup(t *testing.T) (*commandLine, user.Repository) {
	t.Helper()

	conf := &core.Config{SecretKey: []byte("test-secret"), SessionTTL: time.Hour}
	provider := localidentity.NewService(conf)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	usrRepo := inmemdb.NewUserRepository(db)
	reqRepo := inmemdb.NewRequestRepository(db)
	if err = inmemdb.SeedRequests(context.Background(), reqRepo); err != nil {
		t.Fatalf("setup() failed: %v", err)
	}

	cli := &commandLine{
		usrSvc: user.NewService(provider, usrRepo, dummypush.NewTokenSource(""), nopLogger{}),
		reqSvc: request.NewService(reqRepo, nil, nopLogger{}),
	}
	return cli, usrRepo
}

type cliTest struct {
	name    string
	args    []string // without program name
	pwd     string
	wantErr error
}

func Test_commandLine_addUser(t *testing.T) {
	cli, _ := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "name but no email", args: []string{"adduser", "-name", "Hermione Granger"}, wantErr: errHelp},
		{name: "empty password", args: []string{"adduser", "-name", "Hermione Granger", "-email", "hg@x.com"}, wantErr: errHelp},
		{name: "ok", args: []string{"adduser", "-name", "Hermione Granger", "-email", "hg@x.com"}, pwd: "alohomora"},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			return []byte(tt.pwd), nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_approve(t *testing.T) {
	cli, usrRepo := setup(t)
	ctx := context.Background()

	usr, _, err := cli.usrSvc.SignUp(ctx, user.NewUser{Name: "Hermione Granger", Email: "hg@x.com", Password: "alohomora"})
	if err != nil {
		t.Fatalf("SignUp() failed: %v", err)
	}

	tests := []cliTest{
		{name: "no args", args: []string{"approve"}, wantErr: errHelp},
		{name: "user not found", args: []string{"approve", "-id", "lol"}, wantErr: user.ErrNotFound},
		{name: "approve", args: []string{"approve", "-id", usr.ID}},
		{name: "approve and elevate", args: []string{"approve", "-id", usr.ID, "-cr"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); errors.Cause(err) != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	refreshed, err := usrRepo.GetUserByID(ctx, usr.ID)
	if err != nil {
		t.Fatalf("GetUserByID() failed: %v", err)
	}
	if !refreshed.IsApproved || !refreshed.IsClassRep {
		t.Errorf("approve -cr left flags isApproved=%t isCR=%t", refreshed.IsApproved, refreshed.IsClassRep)
	}
	if refreshed.Role() != user.RoleClassRepresentative {
		t.Errorf("Role() = %s, want %s", refreshed.Role(), user.RoleClassRepresentative)
	}
}

func Test_commandLine_requests(t *testing.T) {
	cli, _ := setup(t)

	if err := cli.run([]string{"admin", "requests"}); err != nil {
		t.Errorf("cli.run() unexpected error = %v", err)
	}
}
