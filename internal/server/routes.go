package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Scanner page and its form posts
	mux.Handle("/", s.app.DashboardHandler)
	mux.HandleFunc("/scan", s.app.ScanHandler.HandleScan)
	mux.HandleFunc("/reset", s.app.ScanHandler.HandleReset)
	mux.HandleFunc("/lang", s.app.ScanHandler.HandleLang)

	// Static files (CSS, JS, images)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)

	// MCP endpoint (JSON-RPC over HTTP)
	if s.app.MCPHandler != nil {
		mux.Handle("/mcp", s.app.MCPHandler)
	}

	// API routes
	mux.HandleFunc("/api/health", s.app.HealthHandler.ServeHTTP)
	mux.HandleFunc("/api/version", s.app.VersionHandler.ServeHTTP)
	mux.HandleFunc("/api/scan", s.app.APIScanHandler.ServeHTTP)
	mux.HandleFunc("/api/session", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{
			"GET":    s.app.SessionAPIHandler.HandleState,
			"HEAD":   s.app.SessionAPIHandler.HandleState,
			"DELETE": s.app.SessionAPIHandler.HandleClear,
		})
	})
	mux.HandleFunc("/api/session/reset", s.app.SessionAPIHandler.HandleReset)

	// Prometheus scrape endpoint
	mux.Handle("/metrics", s.app.Metrics.Handler())

	// 404 handler for unmatched API routes
	mux.HandleFunc("/api/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched API routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
