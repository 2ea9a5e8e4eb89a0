// Package httpapi exposes the catalog and authentication services over a
// JSON REST API. Reads of public site content need no credentials; every
// mutating route and the message inbox sit behind a bearer-token guard.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/grafibook/automotora/internal/logging"
	"github.com/grafibook/automotora/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	catalog *services.CatalogService
	images  *services.ImageService
}

func NewServer(a string, l logging.Logger, us *services.UserService, cs *services.CatalogService, is *services.ImageService) (*Server, error) {
	return &Server{
		address: a,
		logger:  l.With("module", "http_server"),
		users:   us,
		catalog: cs,
		images:  is,
	}, nil
}

// Router builds the full route table. Split out of Run so tests can drive
// the handlers through httptest without binding a socket.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requestLogMiddleware)

	// account endpoints
	api.HandleFunc("/register", s.registerHandler).Methods(http.MethodPost)
	api.HandleFunc("/login", s.loginHandler).Methods(http.MethodPost)

	// public reads and the contact form
	api.HandleFunc("/car-stock", s.listCarsHandler).Methods(http.MethodGet)
	api.HandleFunc("/car-stock/{id:[0-9]+}", s.getCarHandler).Methods(http.MethodGet)
	api.HandleFunc("/products", s.listProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", s.getProductHandler).Methods(http.MethodGet)
	api.HandleFunc("/services", s.listServicesHandler).Methods(http.MethodGet)
	api.HandleFunc("/services/{id:[0-9]+}", s.getServiceHandler).Methods(http.MethodGet)
	api.HandleFunc("/sales", s.listSalesHandler).Methods(http.MethodGet)
	api.HandleFunc("/team", s.listTeamHandler).Methods(http.MethodGet)
	api.HandleFunc("/about-us", s.getAboutUsHandler).Methods(http.MethodGet)
	api.HandleFunc("/send-message", s.sendMessageHandler).Methods(http.MethodPost)

	// everything below requires a valid session token
	guarded := api.NewRoute().Subrouter()
	guarded.Use(s.authMiddleware)

	guarded.HandleFunc("/car-stock", s.createCarHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/car-stock/{id:[0-9]+}", s.updateCarHandler).Methods(http.MethodPut)
	guarded.HandleFunc("/car-stock/{id:[0-9]+}", s.deleteCarHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/products", s.createProductHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/products/{id:[0-9]+}", s.deleteProductHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/services", s.createServiceHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/services/{id:[0-9]+}", s.updateServiceHandler).Methods(http.MethodPut)
	guarded.HandleFunc("/services/{id:[0-9]+}", s.deleteServiceHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/sales", s.createSaleHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/sales/{id:[0-9]+}", s.deleteSaleHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/team", s.createTeamMemberHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/team/{id:[0-9]+}", s.updateTeamMemberHandler).Methods(http.MethodPut)
	guarded.HandleFunc("/team/{id:[0-9]+}", s.deleteTeamMemberHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/about-us", s.createAboutUsHandler).Methods(http.MethodPost)
	guarded.HandleFunc("/about-us/{id:[0-9]+}", s.updateAboutUsHandler).Methods(http.MethodPut)
	guarded.HandleFunc("/about-us/{id:[0-9]+}", s.deleteAboutUsHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/messages", s.listMessagesHandler).Methods(http.MethodGet)
	guarded.HandleFunc("/messages/{id:[0-9]+}", s.getMessageHandler).Methods(http.MethodGet)
	guarded.HandleFunc("/messages/{id:[0-9]+}", s.updateMessageHandler).Methods(http.MethodPut)
	guarded.HandleFunc("/messages/{id:[0-9]+}", s.deleteMessageHandler).Methods(http.MethodDelete)

	guarded.HandleFunc("/uploads", s.presignUploadHandler).Methods(http.MethodPost)

	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
