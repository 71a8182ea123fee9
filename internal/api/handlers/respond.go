package handlers

import (
	"encoding/json"
	"net/http"
)

// envelope is the response shape shared by every endpoint: successful
// payloads are merged into {"ok": true, ...}, failures are
// {"ok": false, "error": "..."}.
type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	body := envelope{"ok": true}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{"ok": false, "error": message})
}
