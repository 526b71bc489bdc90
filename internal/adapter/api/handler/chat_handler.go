package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopsphere/internal/adapter/api/middleware"
	"shopsphere/internal/usecase"
	"shopsphere/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

// Initiate resolves or creates the room for the caller and the named
// participant: 200 when the room already existed, 201 when it was created.
func (h *ChatHandler) Initiate(c echo.Context) error {
	var input usecase.InitiateChatInput
	if err := c.Bind(&input); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&input); err != nil {
		return response.Error(c, err)
	}

	room, created, err := h.chatUseCase.InitiateChat(
		c.Request().Context(),
		middleware.GetUserID(c),
		middleware.GetRole(c),
		input,
	)
	if err != nil {
		return response.Error(c, err)
	}

	if created {
		return response.Success(c, http.StatusCreated, "Chat created", map[string]interface{}{"chat": room})
	}
	return response.Success(c, http.StatusOK, "Chat retrieved", map[string]interface{}{"chat": room})
}

func (h *ChatHandler) List(c echo.Context) error {
	chats, err := h.chatUseCase.ListChats(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Chats retrieved", map[string]interface{}{"chats": chats})
}

func (h *ChatHandler) Messages(c echo.Context) error {
	messages, err := h.chatUseCase.GetMessages(c.Request().Context(), middleware.GetUserID(c), c.Param("chatId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, http.StatusOK, "Messages retrieved", map[string]interface{}{"messages": messages})
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	changed, err := h.chatUseCase.MarkRead(c.Request().Context(), middleware.GetUserID(c), c.Param("chatId"))
	if err != nil {
		return response.Error(c, err)
	}

	if !changed {
		return response.Success(c, http.StatusOK, "No unread messages to mark.", nil)
	}
	return response.Success(c, http.StatusOK, "Messages marked as read", nil)
}
