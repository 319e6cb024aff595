// Package live serves a browser page that edits a polygon over a
// websocket. The page only forwards input and paints what it is told; every
// connection owns its own clippath.Session on the server.
package live

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gogpu/clippath"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// Server is an http.Handler serving the editor page at / and the
// websocket endpoint at /ws.
type Server struct {
	mux      *http.ServeMux
	upgrader websocket.Upgrader
	width    int
	height   int
	opts     []clippath.SessionOption
}

// NewServer creates a server whose sessions start with a width x height
// canvas and the given session options.
func NewServer(width, height int, opts ...clippath.SessionOption) *Server {
	s := &Server{
		mux:    http.NewServeMux(),
		width:  width,
		height: height,
		opts:   opts,
	}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /ws", s.handleWS)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	log := clippath.Logger().With("remote", r.RemoteAddr)
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("live: upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ed := newEditor(s.width, s.height, s.opts...)
	log.Info("live: session opened")
	defer log.Info("live: session closed")

	if err := conn.WriteJSON(ed.reply(nil)); err != nil {
		log.Warn("live: write failed", "err", err)
		return
	}
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("live: read failed", "err", err)
			}
			return
		}
		if err := conn.WriteJSON(ed.apply(msg, log)); err != nil {
			log.Warn("live: write failed", "err", err)
			return
		}
	}
}

// editor is one connection's session and the recorder it draws into.
type editor struct {
	session *clippath.Session
	rec     *clippath.Recorder
}

func newEditor(width, height int, opts ...clippath.SessionOption) *editor {
	rec := clippath.NewRecorder(width, height)
	opts = append(opts[:len(opts):len(opts)], clippath.WithRenderer(rec))
	return &editor{
		session: clippath.NewSession(width, height, opts...),
		rec:     rec,
	}
}

// ErrUnknownMessage is reported for messages with an unknown type.
var ErrUnknownMessage = errors.New("live: unknown message type")

// apply runs one message against the session and builds the reply.
func (e *editor) apply(msg Message, log *slog.Logger) Reply {
	err := e.dispatch(msg)
	if err != nil {
		log.Debug("live: message rejected", "type", msg.Type, "err", err)
	}
	return e.reply(err)
}

func (e *editor) dispatch(msg Message) error {
	if phase, ok := phases[msg.Type]; ok {
		ev, err := msg.event(phase)
		if err != nil {
			return err
		}
		e.session.HandleEvent(phase, ev)
		return nil
	}
	switch msg.Type {
	case "mode":
		m, err := clippath.ParseMode(msg.Mode)
		if err != nil {
			return err
		}
		e.session.SetMode(m)
	case "resize":
		return e.session.Resize(msg.Width, msg.Height)
	case "clear":
		e.session.Clear()
	case "sync":
		e.session.Redraw()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
	return nil
}

func (e *editor) reply(err error) Reply {
	w, h := e.session.Size()
	r := Reply{
		Commands: wireCommands(e.rec.Take()),
		Tokens:   wireTokens(e.session.Tokens()),
		ClipPath: e.session.ClipPath(),
		Mode:     e.session.Mode().String(),
		Width:    w,
		Height:   h,
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
