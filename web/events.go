package web

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// serveEvents streams frames as server-sent events, for clients without websockets
func (s *Server) serveEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Expose-Headers", "Content-Type")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := s.subscribe()
	defer s.unsubscribe(ch)

	fmt.Fprintf(w, "data: %s\n\n", s.encodedFrame())
	flusher.Flush()

	running := true
	for running {
		select {
		case payload := <-ch:
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()

		case <-r.Context().Done():
			running = false
		}
	}
}
