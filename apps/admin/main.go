package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dikshant1602/wandwrite/core"
	"github.com/dikshant1602/wandwrite/core/request"
	"github.com/dikshant1602/wandwrite/core/user"
	firebaseidentity "github.com/dikshant1602/wandwrite/services/identity/firebase"
	localidentity "github.com/dikshant1602/wandwrite/services/identity/local"
	dummypush "github.com/dikshant1602/wandwrite/services/push/dummy"
	firestoredb "github.com/dikshant1602/wandwrite/storage/document/firestore"
	inmemdb "github.com/dikshant1602/wandwrite/storage/document/inmem"
)

func main() {
	conf := core.NewConfig()
	ctx := context.Background()
	logger := stdLogger{std: log.New(os.Stdout, "ADMIN : ", log.LstdFlags)}

	var (
		provider core.IdentityProvider
		usrRepo  user.Repository
		reqRepo  request.Repository
		err      error
	)
	if conf.Debug {
		provider = localidentity.NewService(conf)

		db, dbErr := inmemdb.Open()
		if dbErr != nil {
			log.Fatal(dbErr)
		}
		usrRepo = inmemdb.NewUserRepository(db)
		reqRepo = inmemdb.NewRequestRepository(db)
		if err = inmemdb.SeedRequests(ctx, reqRepo); err != nil {
			log.Fatal(err)
		}
	} else {
		if provider, err = firebaseidentity.NewService(ctx, conf); err != nil {
			log.Fatal(err)
		}
		client, dbErr := firestoredb.Open(ctx, conf)
		if dbErr != nil {
			log.Fatal(dbErr)
		}
		defer func() { _ = client.Close() }()
		usrRepo = firestoredb.NewUserRepository(client)
		reqRepo = firestoredb.NewRequestRepository(client)
	}

	cli := &commandLine{
		usrSvc: user.NewService(provider, usrRepo, dummypush.NewTokenSource(""), logger),
		reqSvc: request.NewService(reqRepo, nil, logger),
	}

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// stdLogger satisfies core.Logger for CLI use; nothing ships to an
// external tracker here.
type stdLogger struct {
	std *log.Logger
}

var _ core.Logger = stdLogger{}

func (l stdLogger) Enable(bool)                           {}
func (l stdLogger) Debug(msg string, args ...interface{}) { l.print(msg, args) }
func (l stdLogger) Info(msg string, args ...interface{})  { l.print(msg, args) }
func (l stdLogger) Warn(msg string, args ...interface{})  { l.print(msg, args) }
func (l stdLogger) Error(msg string, args ...interface{}) { l.print(msg, args) }
func (l stdLogger) Fatal(msg string, args ...interface{}) { l.print(msg, args); os.Exit(1) }

func (l stdLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}
