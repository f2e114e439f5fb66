// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package services adapts mediapager's long-running components to suture's
context-aware Serve pattern.

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService wraps an *http.Server: it runs ListenAndServe in a
goroutine and calls Shutdown with a bounded context once the supervisor
cancels it.

GradeService periodically grades the performance monitor so the
mediapager_performance_grade gauges stay current between admin calls.

Both implement fmt.Stringer so supervisor events name them.
*/
package services
