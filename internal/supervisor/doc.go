// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

/*
Package supervisor runs the long-lived parts of mediapager under a suture v4
supervisor tree.

The tree has two layers so a failing background task cannot take the HTTP
listener down with it:

	Root ("mediapager")
	├── Telemetry ("telemetry-layer")
	│   └── GradeService (refreshes performance grade gauges)
	└── API ("api-layer")
	    └── HTTPServerService

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog, which takes a *slog.Logger. Pass logging.NewSlogLogger() so the
events end up in the same zerolog stream as the rest of the process.

The pagination engine itself starts no goroutines; everything that runs in
the background lives here.
*/
package supervisor
