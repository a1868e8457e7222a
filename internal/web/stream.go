package web

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// handleStream pushes every driver snapshot to the client and applies
// {"speed": x} messages received from it.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, unsubscribe := s.driver.Subscribe()
	defer unsubscribe()

	go s.readSpeed(conn, unsubscribe)

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(s.driver.Snapshot()); err != nil {
		return
	}
	for snap := range updates {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(snap); err != nil {
			s.logger.Debug("websocket write", zap.Error(err))
			return
		}
	}
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "driver stopped"),
		time.Now().Add(writeWait))
}

// readSpeed ends the subscription when the client goes away.
func (s *Server) readSpeed(conn *websocket.Conn, unsubscribe func()) {
	defer unsubscribe()
	for {
		var req speedRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("websocket read", zap.Error(err))
			}
			return
		}
		if req.Speed != nil {
			s.driver.SetSpeed(*req.Speed)
		}
	}
}
