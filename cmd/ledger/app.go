package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"account-ledger/internal/config"
	"account-ledger/internal/handlers"
	"account-ledger/internal/middleware"
	"account-ledger/internal/store"

	"github.com/go-chi/chi/v5"
)

type app struct {
	store  store.Store
	server http.Server
}

func newApp(s store.Store) *app {
	instance := &app{
		store: s,
	}

	return instance
}

func (a *app) Close() error {
	if err := a.shutdownServer(); err != nil {
		return fmt.Errorf("error by Server shutdown: %w", err)
	}

	if err := a.store.Close(); err != nil {
		return fmt.Errorf("error by closing Store: %w", err)
	}

	log.Println("Store graceful shutdown complete.")

	return nil
}

func (a *app) StartServer() error {
	log.Printf("Running server on %s", config.Config.AddrRun)

	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Handle("/signup", &handlers.Signup{
				Store: a.store,
			})
			r.Handle("/signin", &handlers.Signin{
				Store: a.store,
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth)

				r.Handle("/", &handlers.Update{
					Store: a.store,
				})
				r.Handle("/me", &handlers.Me{
					Store: a.store,
				})
				r.Handle("/bulk", &handlers.Search{
					Store: a.store,
				})
			})
		})

		r.Route("/account", func(r chi.Router) {
			r.Use(middleware.Auth)

			r.Handle("/balance", &handlers.Balance{
				Store: a.store,
			})
			r.Handle("/transfer", &handlers.Transfer{
				Store: a.store,
			})
		})
	})

	a.server = http.Server{
		Addr:    config.Config.AddrRun,
		Handler: r,
	}

	return a.server.ListenAndServe()
}

func (a *app) shutdownServer() error {
	shutdownCtx, shutdownRelease := context.WithCancel(context.TODO())
	defer shutdownRelease()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP shutdown error: %w", err)
	}

	log.Println("HTTP graceful shutdown complete.")

	return nil
}

func (a *app) CatchTerminateSignal() error {
	terminateSignals := make(chan os.Signal, 1)

	signal.Notify(terminateSignals, syscall.SIGINT, syscall.SIGTERM)

	<-terminateSignals

	if err := a.Close(); err != nil {
		return err
	}

	log.Println("Terminate app complete")

	return nil
}
