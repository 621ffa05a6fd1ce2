package handler

import (
	"context"
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/serverutils"
	"github.com/Ishowar84/urban-plate-backend/internal/service"
	internalWS "github.com/Ishowar84/urban-plate-backend/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const handshakeWriteWait = 10 * time.Second

// ChatStreamHandler upgrades chat stream requests and runs the handshake.
// All checks happen after the upgrade so the client always gets a proper
// websocket close code instead of a failed HTTP response.
type ChatStreamHandler struct {
	chatService service.IChatService
	registry    *internalWS.Registry
	logger      logger.ILogger
}

func NewChatStreamHandler(chatService service.IChatService, registry *internalWS.Registry, log logger.ILogger) *ChatStreamHandler {
	return &ChatStreamHandler{
		chatService: chatService,
		registry:    registry,
		logger:      log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *ChatStreamHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(h.runSession)(c)
}

func (h *ChatStreamHandler) runSession(conn *websocket.Conn) {
	defer conn.Close()

	// Browsers cannot set headers on a websocket dial, so the token rides
	// in the query string.
	claims, err := serverutils.VerifyToken(conn.Query("token"))
	if err != nil {
		h.logger.Warn("ChatStreamHandler", "Rejected stream with invalid token", map[string]interface{}{
			"error": err.Error(),
		})
		h.closeWith(conn, websocket.ClosePolicyViolation, "invalid token")
		return
	}

	orderId, err := uuid.Parse(conn.Params("order_id"))
	if err != nil {
		h.closeWith(conn, websocket.CloseNormalClosure, "unknown order")
		return
	}

	senderType := entity.SenderType(conn.Params("sender_type"))
	if !senderType.Valid() {
		h.closeWith(conn, websocket.ClosePolicyViolation, "invalid sender type")
		return
	}

	ctx := context.Background()
	if _, err := h.chatService.AuthorizeStream(ctx, claims.UserId, orderId); err != nil {
		h.rejectStream(conn, claims.UserId, orderId, err)
		return
	}

	h.logger.Info("ChatStreamHandler", "Chat stream opened", map[string]interface{}{
		"order_id":    orderId,
		"user_id":     claims.UserId,
		"sender_type": senderType,
	})

	client := internalWS.NewClient(h.registry, conn, orderId, senderType)
	internalWS.Serve(client, func(text string) error {
		return h.chatService.StreamInbound(ctx, orderId, senderType, text)
	})

	h.logger.Info("ChatStreamHandler", "Chat stream closed", map[string]interface{}{
		"order_id": orderId,
		"user_id":  claims.UserId,
	})
}

// rejectStream maps a handshake failure to its close code: policy violation
// for authorization problems, normal closure for a missing order or a chat
// that already ended.
func (h *ChatStreamHandler) rejectStream(conn *websocket.Conn, userId, orderId uuid.UUID, err error) {
	code := websocket.ClosePolicyViolation
	reason := "not authorized"

	if appErr, ok := apperror.As(err); ok {
		switch appErr.Kind {
		case apperror.KindNotFound:
			code = websocket.CloseNormalClosure
			reason = "order not found"
		case apperror.KindConflict:
			code = websocket.CloseNormalClosure
			reason = "chat is closed"
		}
	}

	h.logger.Warn("ChatStreamHandler", "Rejected chat stream", map[string]interface{}{
		"order_id": orderId,
		"user_id":  userId,
		"reason":   reason,
	})
	h.closeWith(conn, code, reason)
}

func (h *ChatStreamHandler) closeWith(conn *websocket.Conn, code int, reason string) {
	deadline := time.Now().Add(handshakeWriteWait)
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
}

// RegisterRoutes mounts the stream endpoint. Token auth happens inside the
// session, not via middleware.
func (h *ChatStreamHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/chat/ws/:order_id/:sender_type", h.ServeWs)
}
