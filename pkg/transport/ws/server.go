// Package ws serves game sessions over WebSocket: a client sends programs to
// run and receives every step of the run as it happens.
package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"lightbot/pkg/game/gameplay"
	"lightbot/pkg/game/level"
	"lightbot/pkg/game/program"
	"lightbot/pkg/game/state"
)

const (
	outQueue     = 64
	writeTimeout = 5 * time.Second
	readTimeout  = 10 * time.Minute
)

// Server hands every connection its own game session over a shared level repository
type Server struct {
	levels level.Repository
	opts   func() (gameplay.Options, error)
	log    *log.Logger

	upgrader websocket.Upgrader
}

// NewServer creates a server. options is called once per connection so
// sessions never share an observer.
func NewServer(levels level.Repository, options func() (gameplay.Options, error), logger *log.Logger) *Server {
	return &Server{
		levels: levels,
		opts:   options,
		log:    logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// session is the state of one connection
type session struct {
	id   string
	game *state.Game
	exec *gameplay.Executor
	out  chan []byte
	log  *log.Logger

	ctx     context.Context
	runDone chan struct{}
	wg      sync.WaitGroup
}

// Handler upgrades the request and serves the session until the client leaves
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		opts, err := s.opts()
		if err != nil {
			s.log.Printf("ws: session options: %v", err)
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sess := &session{
			id:   uuid.NewString(),
			game: state.NewGame(s.levels),
			out:  make(chan []byte, outQueue),
			log:  s.log,
			ctx:  ctx,
		}
		opts.Observer = gameplay.Observers{opts.Observer, gameplay.ObserverFunc(func(e gameplay.Event) {
			sess.send(EventMsg{Type: TypeEvent, Event: e})
		})}
		if opts.Logger == nil {
			opts.Logger = s.log
		}
		sess.exec = gameplay.NewExecutor(sess.game, opts)
		s.log.Printf("ws: session %s connected from %s (messages: %s)", sess.id, r.RemoteAddr, opts.Messages.Locale())

		go sess.writeLoop(conn, cancel)

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if !IsClosed(err) {
					s.log.Printf("ws: session %s read: %v", sess.id, err)
				}
				cancel()
				break
			}
			sess.handle(msg)
		}

		sess.exec.Cancel()
		sess.wg.Wait()
		s.log.Printf("ws: session %s closed", sess.id)
	}
}

// frameWriter is the write side of a connection
type frameWriter interface {
	SetWriteDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// writeLoop drains the outgoing queue. A failed write closes the connection,
// which also unblocks the reader.
func (sess *session) writeLoop(conn frameWriter, cancel context.CancelFunc) {
	for {
		select {
		case <-sess.ctx.Done():
			return
		case b := <-sess.out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
				sess.log.Printf("ws: session %s write: %v", sess.id, err)
				cancel()
				_ = conn.Close()
				return
			}
		}
	}
}

func (sess *session) handle(raw []byte) {
	base, err := DecodeBase(raw)
	if err != nil {
		sess.sendError("malformed message: %v", err)
		return
	}

	switch base.Type {
	case TypeRun:
		var m RunMsg
		if err := json.Unmarshal(raw, &m); err != nil {
			sess.sendError("malformed %s: %v", TypeRun, err)
			return
		}
		sess.run(m)
	case TypeCancel:
		sess.exec.Cancel()
	case TypeReset:
		if sess.busy() {
			sess.sendError("%v", gameplay.ErrRunInProgress)
			return
		}
		sess.game.Reset()
		sess.send(StateMsg{Type: TypeState, State: sess.game.Snapshot()})
	default:
		sess.sendError("unknown message type %q", base.Type)
	}
}

// busy returns true while a run started by this session has not returned
func (sess *session) busy() bool {
	if sess.runDone == nil {
		return false
	}
	select {
	case <-sess.runDone:
		return false
	default:
		return true
	}
}

func (sess *session) run(m RunMsg) {
	if sess.busy() {
		sess.sendError("%v", gameplay.ErrRunInProgress)
		return
	}

	p := m.Program
	if m.Script != "" {
		parsed, err := program.Parse(m.Script)
		if err != nil {
			sess.sendError("%v", err)
			return
		}
		p = parsed
	}

	if m.LevelID != sess.game.LevelID() && !sess.game.LoadLevel(m.LevelID) {
		sess.sendError("level %d: %v", m.LevelID, gameplay.ErrNoLevel)
		return
	}
	sess.game.SetProgram(p)

	done := make(chan struct{})
	sess.runDone = done
	sess.wg.Add(1)
	go func() {
		defer sess.wg.Done()

		var reply any
		res, err := sess.exec.Run(sess.ctx, sess.game.Program)
		if err != nil {
			reply = ErrorMsg{Type: TypeError, Message: err.Error()}
		} else {
			sess.log.Printf("ws: session %s level %d: %v", sess.id, sess.game.LevelID(), res.Outcome)
			reply = ResultMsg{
				Type:     TypeResult,
				Outcome:  res.Outcome,
				Reason:   res.Reason,
				Path:     res.Path,
				Messages: append([]string(nil), sess.game.Messages...),
				State:    sess.game.Snapshot(),
			}
		}

		// the session is free again before the client hears about it
		close(done)
		sess.send(reply)
	}()
}

func (sess *session) sendError(format string, a ...any) {
	sess.send(ErrorMsg{Type: TypeError, Message: fmt.Sprintf(format, a...)})
}

// send queues v for the writer. It gives up once the connection is gone.
func (sess *session) send(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		sess.log.Printf("ws: session %s: encode %T: %v", sess.id, v, err)
		return
	}
	select {
	case sess.out <- b:
	case <-sess.ctx.Done():
	}
}

// IsClosed reports whether err is a normal end of a WebSocket connection
func IsClosed(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
