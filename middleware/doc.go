// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Instrumentation

Instrument logs each request through slog and records it in the Prometheus
metrics, labelled by mux pattern:

	wrap := middleware.Instrument(m)
	mux.HandleFunc("GET /elections/{slug}", wrap(h.GetElection))

A nil *metrics.Metrics only logs.

# CORS

	server := http.Server{Handler: middleware.CORS(mux)}

Allows GET, POST and OPTIONS with the Content-Type and X-Admin-Key headers.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.SubmitBallotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
*/
package middleware
