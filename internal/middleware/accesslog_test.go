// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/mediapager/internal/logging"
)

func TestAccessLog_ServerErrorsAtWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/media?limit=5", nil)
	ctx := logging.ContextWithLogger(req.Context(), logging.NewTestLogger(&buf))
	ctx = logging.ContextWithRequestID(ctx, "req-42")
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"status":500`, `"query":"limit=5"`, `"request_id":"req-42"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestAccessLog_PassesResponseThrough(t *testing.T) {
	t.Parallel()

	handler := AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusAccepted || rec.Body.String() != "queued" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}
