package http

import (
	"net/http"

	"doctors-portal-server/internal/delivery/http/handler"
	"doctors-portal-server/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	catalogHandler *handler.CatalogHandler
	bookingHandler *handler.BookingHandler
	userHandler    *handler.UserHandler
	doctorHandler  *handler.DoctorHandler
	paymentHandler *handler.PaymentHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
	roleMiddleware *middleware.RoleMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	catalogHandler *handler.CatalogHandler,
	bookingHandler *handler.BookingHandler,
	userHandler *handler.UserHandler,
	doctorHandler *handler.DoctorHandler,
	paymentHandler *handler.PaymentHandler,
	contactHandler *handler.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
	roleMiddleware *middleware.RoleMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		catalogHandler: catalogHandler,
		bookingHandler: bookingHandler,
		userHandler:    userHandler,
		doctorHandler:  doctorHandler,
		paymentHandler: paymentHandler,
		contactHandler: contactHandler,
		authMiddleware: authMiddleware,
		roleMiddleware: roleMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

// Setup registers the portal's routes. Paths are part of the wire
// contract with the existing frontend, so there is no version prefix.
func (r *Router) Setup() *mux.Router {
	protected := func(h http.HandlerFunc) http.Handler {
		return r.authMiddleware.Authenticate(h)
	}
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return r.authMiddleware.Authenticate(r.roleMiddleware.RequireAdmin(h))
	}

	// Public catalog
	r.router.HandleFunc("/", r.live).Methods(http.MethodGet)
	r.router.HandleFunc("/service", r.catalogHandler.ListServices).Methods(http.MethodGet)
	r.router.HandleFunc("/specialty", r.catalogHandler.ListSpecialties).Methods(http.MethodGet)
	r.router.HandleFunc("/available", r.catalogHandler.Availability).Methods(http.MethodGet)

	// Users and roles; the admin-promotion template must be registered
	// before the upsert template so it wins the match.
	r.router.HandleFunc("/admin/{email}", r.userHandler.AdminStatus).Methods(http.MethodGet)
	r.router.Handle("/user/admin/{email}", adminOnly(r.userHandler.PromoteAdmin)).Methods(http.MethodPut)
	r.router.HandleFunc("/user/{email}", r.userHandler.Upsert).Methods(http.MethodPut)
	r.router.HandleFunc("/user/{id}", r.userHandler.Delete).Methods(http.MethodDelete)
	r.router.Handle("/user", protected(r.userHandler.List)).Methods(http.MethodGet)

	// Bookings
	r.router.Handle("/booking", protected(r.bookingHandler.ListByPatient)).Methods(http.MethodGet)
	r.router.HandleFunc("/booking", r.bookingHandler.Create).Methods(http.MethodPost)
	r.router.Handle("/booking/{id}", protected(r.bookingHandler.GetByID)).Methods(http.MethodGet)
	r.router.Handle("/booking/{id}", protected(r.bookingHandler.MarkPaid)).Methods(http.MethodPatch)

	// Payments
	r.router.Handle("/create-payment-intent", protected(r.paymentHandler.CreateIntent)).Methods(http.MethodPost)

	// Doctors (admin only)
	r.router.Handle("/doctor", adminOnly(r.doctorHandler.Create)).Methods(http.MethodPost)
	r.router.Handle("/doctor", adminOnly(r.doctorHandler.List)).Methods(http.MethodGet)
	r.router.Handle("/doctor/{email}", adminOnly(r.doctorHandler.Delete)).Methods(http.MethodDelete)

	// Contact form
	r.router.HandleFunc("/contact", r.contactHandler.Submit).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) live(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Doctor Portal Server is Running"))
}
