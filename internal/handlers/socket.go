package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	socketio "github.com/googollee/go-socket.io"
	"github.com/googollee/go-socket.io/engineio"
	"github.com/googollee/go-socket.io/engineio/transport"
	"github.com/googollee/go-socket.io/engineio/transport/polling"
	"github.com/googollee/go-socket.io/engineio/transport/websocket"

	"github.com/Titan0-08/Fitness-Web/pkg/utils"
)

var SocketServer *socketio.Server

func groupRoom(groupID string) string {
	return "group:" + groupID
}

// InitSocketServer starts the realtime layer for community chat.
// Clients authenticate with their session token on the handshake and
// join per-group rooms after a membership check.
func InitSocketServer() *socketio.Server {
	server := socketio.NewServer(&engineio.Options{
		Transports: []transport.Transport{
			&websocket.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
			&polling.Transport{
				CheckOrigin: func(r *http.Request) bool { return true },
			},
		},
	})

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")

		u := s.URL()
		token := u.Query().Get("token")
		if token == "" {
			log.Println("Socket connection rejected: no token provided", s.ID())
			return fmt.Errorf("authentication required")
		}

		claims, err := utils.ValidateSessionToken(token)
		if err != nil {
			log.Println("Socket connection rejected: invalid token", s.ID())
			return fmt.Errorf("invalid token")
		}

		// Keep the user id on the connection for membership checks
		s.SetContext(claims.UserID)
		s.Join(claims.UserID)

		return nil
	})

	server.OnEvent("/", "join_group", func(s socketio.Conn, groupID string) {
		userID, _ := s.Context().(string)
		if userID == "" || groupID == "" {
			return
		}
		member, err := isMember(groupID, userID)
		if err != nil || !member {
			s.Emit("join_rejected", map[string]interface{}{"groupId": groupID})
			return
		}
		s.Join(groupRoom(groupID))
	})

	server.OnEvent("/", "leave_group", func(s socketio.Conn, groupID string) {
		if groupID != "" {
			s.Leave(groupRoom(groupID))
		}
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("socket closed:", reason)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Println("socket error:", e)
	})

	go server.Serve()
	SocketServer = server
	return server
}

// SocketHandler wraps the socket.io server for Gin
func SocketHandler(server *socketio.Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		server.ServeHTTP(c.Writer, c.Request)
	}
}
