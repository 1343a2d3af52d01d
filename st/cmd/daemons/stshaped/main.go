// stshaped serves the epicycloid engine over HTTP.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"shapetools/gogroup"
	"shapetools/st/log"
)

var (
	addr string
)

func init() {
	flag.StringVar(&addr, "addr", ":9098", "http listen and serve address")
}

func main() {
	flag.Parse()
	log.Init("stshaped")

	ctxt := gogroup.New(context.Background(), "stshaped")

	router := mux.NewRouter()
	router.HandleFunc("/health", getHealth).Methods("GET")
	router.HandleFunc("/v1/units", getUnits).Methods("GET")
	router.HandleFunc("/v1/epicycloid", postEpicycloid).Methods("POST")

	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		WriteTimeout: 1 * time.Minute,
		ReadTimeout:  30 * time.Second,
	}

	ctxt.Go(func() error {
		log.Info("listening on %v", addr)
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	select {
	case <-interrupts:
		log.Notice("shutting down")
		ctxt.Cancel(nil)
	case <-ctxt.Done():
	}

	shutdownCtxt, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtxt)

	for _, err := range ctxt.Wait() {
		log.Error("%v", err)
	}
}
