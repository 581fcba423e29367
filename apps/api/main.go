package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	echoapi "github.com/dikshant1602/wandwrite/apps/api/echo"
	"github.com/dikshant1602/wandwrite/core"
	"github.com/dikshant1602/wandwrite/core/auth"
	"github.com/dikshant1602/wandwrite/core/request"
	"github.com/dikshant1602/wandwrite/core/subject"
	"github.com/dikshant1602/wandwrite/core/user"
	firebaseidentity "github.com/dikshant1602/wandwrite/services/identity/firebase"
	localidentity "github.com/dikshant1602/wandwrite/services/identity/local"
	logsvc "github.com/dikshant1602/wandwrite/services/logger"
	dummypush "github.com/dikshant1602/wandwrite/services/push/dummy"
	fcmpush "github.com/dikshant1602/wandwrite/services/push/fcm"
	firestoredb "github.com/dikshant1602/wandwrite/storage/document/firestore"
	inmemdb "github.com/dikshant1602/wandwrite/storage/document/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()
	ctx := context.Background()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// collaborators: in DEV everything runs in-process; otherwise the
	// managed backend (Firebase Auth, Firestore, FCM) takes over.
	var (
		provider core.IdentityProvider
		usrRepo  user.Repository
		reqRepo  request.Repository
		notifier core.Notifier
		err      error
	)
	if conf.Debug {
		provider = localidentity.NewService(conf)

		db, dbErr := inmemdb.Open()
		if dbErr != nil {
			logger.Fatal(fmt.Sprintf("opening in-memory store: %v", dbErr), dbErr)
		}
		usrRepo = inmemdb.NewUserRepository(db)
		reqRepo = inmemdb.NewRequestRepository(db, inmemdb.WithFetchDelay(conf.RequestFetchDelay))
		if err = inmemdb.SeedRequests(ctx, reqRepo); err != nil {
			logger.Fatal(fmt.Sprintf("seeding requests: %v", err), err)
		}
		notifier = dummypush.NewNotifier()
	} else {
		if provider, err = firebaseidentity.NewService(ctx, conf); err != nil {
			logger.Fatal(fmt.Sprintf("setting up identity provider: %v", err), err)
		}
		client, dbErr := firestoredb.Open(ctx, conf)
		if dbErr != nil {
			logger.Fatal(fmt.Sprintf("opening firestore: %v", dbErr), dbErr)
		}
		defer func() { _ = client.Close() }()
		usrRepo = firestoredb.NewUserRepository(client)
		reqRepo = firestoredb.NewRequestRepository(client)
		if notifier, err = fcmpush.NewNotifier(ctx, conf); err != nil {
			logger.Fatal(fmt.Sprintf("setting up notifier: %v", err), err)
		}
	}

	tokens := dummypush.NewTokenSource(conf.Push.DeviceToken)

	// set up services
	gate := auth.NewGate(provider)
	usrSvc := user.NewService(provider, usrRepo, tokens, logger)
	reqSvc := request.NewService(reqRepo, notifier, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			Provider:   provider,
			Gate:       gate,
			UserSvc:    usrSvc,
			RequestSvc: reqSvc,
			Subjects:   subject.Default,
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		shutCtx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(shutCtx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
