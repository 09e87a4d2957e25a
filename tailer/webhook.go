// Copyright 2026 The fuzz_exporter Authors
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

package tailer

import (
	"io"
	"net/http"
	"strings"

	json "github.com/bitly/go-simplejson"
	"github.com/sirupsen/logrus"
)

// WebhookTailer accepts engine log lines over HTTP POST. Plain text bodies
// are split into lines; JSON bodies carry either {"line": "..."} or
// {"lines": ["...", ...]}. It implements http.Handler and is mounted on
// the metrics server's mux, so Close is a no-op.
type WebhookTailer struct {
	lines  chan *Line
	errors chan Error
	log    logrus.FieldLogger
}

func NewWebhookTailer(log logrus.FieldLogger) *WebhookTailer {
	return &WebhookTailer{
		lines:  make(chan *Line),
		errors: make(chan Error),
		log:    log,
	}
}

func (t *WebhookTailer) Lines() chan *Line {
	return t.lines
}

func (t *WebhookTailer) Errors() chan Error {
	return t.errors
}

func (t *WebhookTailer) Close() {
	// The listener belongs to the metrics server.
}

func (t *WebhookTailer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "expected POST", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		t.log.Warnf("webhook: failed to read request body: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		t.serveJSON(w, body)
		return
	}
	for _, line := range strings.Split(string(body), "\n") {
		if len(strings.TrimSpace(line)) > 0 {
			t.lines <- &Line{Line: line, Source: "webhook"}
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (t *WebhookTailer) serveJSON(w http.ResponseWriter, body []byte) {
	payload, err := json.NewJson(body)
	if err != nil {
		t.log.Warnf("webhook: invalid json payload: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if lines, err := payload.Get("lines").StringArray(); err == nil {
		for _, line := range lines {
			t.lines <- &Line{Line: line, Source: "webhook"}
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if line, err := payload.Get("line").String(); err == nil {
		t.lines <- &Line{Line: line, Source: "webhook"}
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Error(w, "expected a 'line' or 'lines' field", http.StatusBadRequest)
}
