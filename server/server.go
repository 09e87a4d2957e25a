// Copyright 2025-2026 The fuzz_exporter Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server serves the metrics endpoint (and the webhook input, if
// enabled) over HTTP or HTTPS.
package server

import (
	"fmt"
	"net/http"

	"github.com/fuzzmon/fuzz_exporter/config"
)

// Run blocks serving the handler, it only returns on error.
func Run(cfg *config.ServerConfig, handler http.Handler) error {
	switch cfg.Protocol {
	case "http":
		return RunHttp(cfg.Port, handler)
	case "https":
		return RunHttps(cfg.Port, cfg.Cert, cfg.Key, handler)
	default:
		// config.validate() only lets http and https through.
		return fmt.Errorf("invalid 'server.protocol': %v", cfg.Protocol)
	}
}

func RunHttp(port int, handler http.Handler) error {
	return http.ListenAndServe(fmt.Sprintf(":%v", port), handler)
}

func RunHttps(port int, cert, key string, handler http.Handler) error {
	return http.ListenAndServeTLS(fmt.Sprintf(":%v", port), cert, key, handler)
}
