package handler

import (
	"net/http"

	"github.com/Dan9191/finance-tracker/internal/auth"
	"github.com/Dan9191/finance-tracker/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route. Everything under /api except register and login requires a token.
func NewRouter(h *Handler, issuer *auth.Issuer, origins []string, log *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fail(w, http.StatusNotFound, "Route not found")
	})

	// Public routes
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(issuer))

	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	api.HandleFunc("/auth/profile", h.UpdateProfile).Methods(http.MethodPut)

	api.HandleFunc("/expenses", h.ListExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expenses", h.CreateExpense).Methods(http.MethodPost)
	api.HandleFunc("/expenses/range", h.ListExpensesRange).Methods(http.MethodGet)
	api.HandleFunc("/expenses/{id}", h.UpdateExpense).Methods(http.MethodPut)
	api.HandleFunc("/expenses/{id}", h.DeleteExpense).Methods(http.MethodDelete)

	api.HandleFunc("/emi", h.ListEMIs).Methods(http.MethodGet)
	api.HandleFunc("/emi", h.CreateEMI).Methods(http.MethodPost)
	api.HandleFunc("/emi/{id}", h.UpdateEMI).Methods(http.MethodPut)
	api.HandleFunc("/emi/{id}", h.DeleteEMI).Methods(http.MethodDelete)

	api.HandleFunc("/recurring", h.ListRecurring).Methods(http.MethodGet)
	api.HandleFunc("/recurring", h.CreateRecurring).Methods(http.MethodPost)
	api.HandleFunc("/recurring/{id}", h.UpdateRecurring).Methods(http.MethodPut)
	api.HandleFunc("/recurring/{id}", h.DeleteRecurring).Methods(http.MethodDelete)

	api.HandleFunc("/savings", h.ListSavingsGoals).Methods(http.MethodGet)
	api.HandleFunc("/savings", h.CreateSavingsGoal).Methods(http.MethodPost)
	api.HandleFunc("/savings/{id}", h.UpdateSavingsGoal).Methods(http.MethodPut)
	api.HandleFunc("/savings/{id}", h.DeleteSavingsGoal).Methods(http.MethodDelete)

	api.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}", h.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)
	api.HandleFunc("/auto-expenses/pending", h.PendingAutoExpenses).Methods(http.MethodGet)
	api.HandleFunc("/auto-expenses/materialize", h.MaterializeAutoExpenses).Methods(http.MethodPost)

	api.HandleFunc("/export", h.Export).Methods(http.MethodGet)
	api.HandleFunc("/import", h.Import).Methods(http.MethodPost)

	return middleware.CORS(origins)(middleware.Logging(log)(r))
}
