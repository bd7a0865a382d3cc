// Package web mirrors the game on any browser and accepts the moderator's
// Skip and Reconfigure actions over HTTP.
package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/guslan/buzzin"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// WebDevice is the device of every signal received over HTTP
const WebDevice buzzin.DeviceID = "web"

const qrSize = 320

//go:embed static/index.html
var indexHTML []byte

type ServerConfig struct {
	Bind string
	Port int
	// PublicURL is encoded in the QR code, the request host is used when empty
	PublicURL string
	// AllowControl enables POST /skip and POST /reconfigure.
	// Off by default: the mirror is shared with the audience.
	AllowControl bool
}

type ServerConfigCb func(config *ServerConfig)

// Server is a buzzin.Display that pushes every frame to the connected browsers
type Server struct {
	bus    *buzzin.Bus
	config *ServerConfig
	router *httprouter.Router

	mu    sync.RWMutex
	frame Frame

	subsMutex   sync.Mutex
	subscribers map[chan []byte]struct{}
}

var upgrader = websocket.Upgrader{} // use default options

func NewServer(bus *buzzin.Bus, configs ...ServerConfigCb) *Server {
	config := &ServerConfig{
		Bind:         "0.0.0.0",
		Port:         9999,
		PublicURL:    "",
		AllowControl: false,
	}
	for _, cb := range configs {
		cb(config)
	}

	s := &Server{
		bus:         bus,
		config:      config,
		router:      httprouter.New(),
		frame:       Frame{Control: config.AllowControl, Slots: []SlotFrame{}},
		subscribers: map[chan []byte]struct{}{},
	}

	s.router.GET("/", s.serveIndex)
	s.router.GET("/ws", s.serveWebSocket)
	s.router.GET("/events", s.serveEvents)
	s.router.GET("/state", s.serveState)
	s.router.GET("/qr.png", s.serveQR)
	if config.AllowControl {
		s.router.POST("/skip", s.serveSignal(buzzin.SignalSkip))
		s.router.POST("/reconfigure", s.serveSignal(buzzin.SignalReconfigure))
	}

	return s
}

// Handler is the http handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen serves until ctx is done
func (s *Server) Listen(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(s.config.Bind, strconv.Itoa(s.config.Port)),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Listening on port", slog.Int("port", s.config.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web mirror: %w", err)
	}

	return nil
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) serveState(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(s.encodedFrame())
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Error upgrading connection", slog.Any("error", err))
		return
	}
	defer conn.Close()

	slog.Info("Connecting to display", slog.String("remote", r.RemoteAddr))
	ch := s.subscribe()
	defer s.unsubscribe(ch)

	// the mirror is read-only, reading only detects the close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteMessage(websocket.TextMessage, s.encodedFrame()); err != nil {
		return
	}

	for {
		select {
		case payload := <-ch:
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				slog.Error("Error writing display frame", slog.Any("error", err))
				return
			}

		case <-closed:
			slog.Info("Disconnecting from display", slog.String("remote", r.RemoteAddr))
			return
		}
	}
}

// QR code of the mirror, so the audience can open it on their phones
func (s *Server) serveQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	url := s.config.PublicURL
	if url == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
			scheme = proto
		}
		url = scheme + "://" + r.Host + "/"
	}

	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (s *Server) serveSignal(signal buzzin.Signal) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Header().Set("Cache-Control", "no-cache")

		err := s.bus.Publish(r.Context(), buzzin.Event{Device: WebDevice, Signal: signal})
		if err != nil {
			slog.Error("Error publishing signal", slog.String("signal", signal.String()), slog.Any("error", err))
			http.Error(w, "the game is not accepting signals", http.StatusServiceUnavailable)
			return
		}

		slog.Info("Signal received", slog.String("signal", signal.String()), slog.String("remote", r.RemoteAddr))
		w.WriteHeader(http.StatusAccepted)
	}
}

func (s *Server) subscribe() chan []byte {
	ch := make(chan []byte, 4)

	s.subsMutex.Lock()
	s.subscribers[ch] = struct{}{}
	s.subsMutex.Unlock()

	return ch
}

func (s *Server) unsubscribe(ch chan []byte) {
	s.subsMutex.Lock()
	delete(s.subscribers, ch)
	s.subsMutex.Unlock()
}

// broadcast never blocks, slow clients miss frames
func (s *Server) broadcast(payload []byte) {
	s.subsMutex.Lock()
	defer s.subsMutex.Unlock()

	for ch := range s.subscribers {
		select {
		case ch <- payload:
		default:
			slog.Debug("Dropping frame for a slow client")
		}
	}
}

// Subscribers is the number of connected clients
func (s *Server) Subscribers() int {
	s.subsMutex.Lock()
	defer s.subsMutex.Unlock()

	return len(s.subscribers)
}
