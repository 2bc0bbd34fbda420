package handler

import (
	"net/http"

	"freewise-server/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"freewise"}`))
	}).Methods("GET")

	// Initialize handlers
	highlightHandler := NewHighlightHandler(container.HighlightService, container.Logger)
	bookHandler := NewBookHandler(container.BookService, container.HighlightService, container.Logger)
	reviewHandler := NewReviewHandler(container.ReviewService, container.Logger)
	settingsHandler := NewSettingsHandler(container.SettingsService, container.Logger)
	dashboardHandler := NewDashboardHandler(container.DashboardService, container.Logger)
	exportHandler := NewExportHandler(container.ExportService, container.Logger)

	// Highlight routes
	api.HandleFunc("/highlights", highlightHandler.ListHighlights).Methods("GET")
	api.HandleFunc("/highlights", highlightHandler.CreateHighlight).Methods("POST")
	api.HandleFunc("/highlights/{id}", highlightHandler.GetHighlight).Methods("GET")
	api.HandleFunc("/highlights/{id}", highlightHandler.UpdateHighlight).Methods("PUT")
	api.HandleFunc("/highlights/{id}", highlightHandler.DeleteHighlight).Methods("DELETE")
	api.HandleFunc("/highlights/{id}/favorite", highlightHandler.FavoriteHighlight).Methods("POST")
	api.HandleFunc("/highlights/{id}/discard", highlightHandler.DiscardHighlight).Methods("POST")
	api.HandleFunc("/highlights/{id}/restore", highlightHandler.RestoreHighlight).Methods("POST")

	// Book routes
	api.HandleFunc("/books", bookHandler.ListBooks).Methods("GET")
	api.HandleFunc("/books", bookHandler.CreateBook).Methods("POST")
	api.HandleFunc("/books/{id}", bookHandler.GetBook).Methods("GET")
	api.HandleFunc("/books/{id}", bookHandler.UpdateBook).Methods("PUT")

	// Review routes
	api.HandleFunc("/review/current", reviewHandler.GetCurrent).Methods("GET")
	api.HandleFunc("/review/advance", reviewHandler.Advance).Methods("POST")
	api.HandleFunc("/review/selection", reviewHandler.GetSelection).Methods("GET")

	// Settings and dashboard routes
	api.HandleFunc("/settings", settingsHandler.GetSettings).Methods("GET")
	api.HandleFunc("/settings", settingsHandler.UpdateSettings).Methods("PUT")
	api.HandleFunc("/dashboard", dashboardHandler.GetStats).Methods("GET")

	// Export routes
	api.HandleFunc("/export/highlights.csv", exportHandler.ExportHighlights).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:5173", // SvelteKit dev server
			"http://localhost:4173", // SvelteKit preview
			"http://localhost:3000", // Alternative dev port
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
