package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"shopsphere/internal/domain/entity"
	"shopsphere/internal/infrastructure/auth"
	ws "shopsphere/internal/infrastructure/websocket"
	"shopsphere/pkg/errors"
	"shopsphere/pkg/logger"
	"shopsphere/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser WebSocket clients cannot set headers, so origin policy is
	// handled by the CORS layer in front.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WebSocketHandler struct {
	manager *ws.Manager
	tokens  *auth.JWTManager
}

func NewWebSocketHandler(manager *ws.Manager, tokens *auth.JWTManager) *WebSocketHandler {
	return &WebSocketHandler{manager: manager, tokens: tokens}
}

// Connect authenticates via the token query parameter (browser WebSocket
// clients cannot send an Authorization header) and upgrades the connection.
func (h *WebSocketHandler) Connect(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Error(c, errors.Unauthorized("Not authorized, no token", nil))
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		return response.Error(c, err)
	}
	if claims.Role != entity.RoleBuyer && claims.Role != entity.RoleSeller {
		return response.Error(c, errors.Forbidden("Only buyers and sellers can use chat", nil))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed for %s: %v", claims.UserID, err)
		return nil
	}

	client := h.manager.NewClient(claims.UserID, claims.Role, conn)
	h.manager.Register(client)

	go client.WritePump()
	go client.ReadPump()
	return nil
}
