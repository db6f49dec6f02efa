package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"
)

// NewSocketServer initializes the Socket.IO server clients use to receive
// simulated agent replies. Each conversation gets its own room; the chat
// simulator broadcasts replies into it after the typing delay.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Println("Socket connected:", c.ID())
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, conversationID string) {
		if conversationID == "" {
			log.Println("Invalid conversationId in join request")
			return
		}
		log.Printf("Socket %s joined conversation %s\n", c.ID(), conversationID)
		c.Join(conversationID)
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, conversationID string) {
		c.Leave(conversationID)
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Println("Socket disconnected:", c.ID(), reason)
	})

	return server
}
