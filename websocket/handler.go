package websocket

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gigflow/gigflow-go/config"
	"github.com/gigflow/gigflow-go/types"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const sendBufferSize = 16

// ServeWS upgrades the request and subscribes the authenticated user to their
// own notification stream. Browsers cannot set headers on websocket requests,
// so the JWT arrives as a query parameter.
func ServeWS(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
			return
		}

		claims := &types.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.JwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("Failed to upgrade websocket:", err)
			return
		}

		userID := claims.UserID
		connID := uuid.NewString()
		conn := &connection{send: make(chan []byte, sendBufferSize)}
		hub.register(userID, connID, conn)
		log.Printf("[ws] user %d connected (%s)", userID, connID)

		go func() {
			defer ws.Close()
			for msg := range conn.send {
				if err := ws.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
			ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		}()

		// Inbound messages are ignored; the read loop only detects the close.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.unregister(userID, connID)
		log.Printf("[ws] user %d disconnected (%s)", userID, connID)
	}
}
