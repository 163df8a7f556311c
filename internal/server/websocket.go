// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/internal/typing"
)

const (
	wsWriteWait = 10 * time.Second
	wsReadWait  = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// generateStream runs one tool per connection. The client sends a
// generateRequest; the server answers with chunk frames carrying the result
// text as it is typed, then a single done or error frame, then closes.
func (s *Server) generateStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxBodyBytes)
	conn.SetReadDeadline(time.Now().Add(wsReadWait))

	var req generateRequest
	if err := conn.ReadJSON(&req); err != nil {
		s.writeFrame(conn, generateFrame{Type: "error", Error: "invalid request"})
		return
	}
	conn.SetReadDeadline(time.Time{})

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Any further read error means the client went away.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				cancel()
				return
			}
		}
	}()

	tool, err := generate.ParseTool(string(req.Tool))
	if err != nil {
		s.streamError(conn, err)
		return
	}
	res, err := generate.Run(ctx, s.gen, tool, req.Input)
	if err != nil {
		s.streamError(conn, err)
		return
	}

	err = typing.Play(ctx, res.Text, s.interval, func(chunk string) error {
		return s.writeFrame(conn, generateFrame{Type: "chunk", Text: chunk})
	})
	if err != nil {
		s.log.Debug().Err(err).Str("tool", string(tool)).Msg("stream stopped")
		return
	}

	done := generateFrame{Type: "done", Result: &res}
	if req.Save {
		id, err := s.store.Add(ctx, res.Title, res.Text)
		if err != nil {
			s.streamError(conn, err)
			return
		}
		done.DraftID = id
	}
	if err := s.writeFrame(conn, done); err != nil {
		return
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(wsWriteWait))
}

func (s *Server) streamError(conn *websocket.Conn, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("stream failed")
	}
	s.writeFrame(conn, generateFrame{Type: "error", Error: msg})
}

func (s *Server) writeFrame(conn *websocket.Conn, f generateFrame) error {
	conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(f)
}
