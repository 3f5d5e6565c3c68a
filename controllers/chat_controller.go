package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"studio-backend/models"
	"studio-backend/services"
	"studio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	chatWriteWait      = 10 * time.Second
	chatPongWait       = 60 * time.Second
	chatPingPeriod     = (chatPongWait * 9) / 10
	chatMaxMessageSize = 4096
	chatMaxAuthorLen   = 100
)

type ChatController struct {
	Chat     *services.ChatService
	Hub      *ChatHub
	upgrader websocket.Upgrader
}

// NewChatController accepts websocket upgrades from the given origins; "*"
// accepts any origin.
func NewChatController(chat *services.ChatService, hub *ChatHub, allowedOrigins []string) *ChatController {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return &ChatController{
		Chat: chat,
		Hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return allowAll || origin == "" || allowed[origin]
			},
		},
	}
}

type inboundChatMessage struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

func chatRoom(c *gin.Context) string {
	room := strings.TrimSpace(c.Query("room"))
	if room == "" || len(room) > 64 {
		return services.DefaultChatRoom
	}
	return room
}

// GET /api/chat/messages?room=&limit=
func (cc *ChatController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, err := cc.Chat.Recent(c.Request.Context(), chatRoom(c), limit)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch chat messages")
		return
	}
	c.JSON(http.StatusOK, messages)
}

// GET /ws/chat?room=
func (cc *ChatController) Serve(c *gin.Context) {
	conn, err := cc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &chatClient{room: chatRoom(c), send: make(chan []byte, 16)}
	cc.Hub.register(client)

	go cc.writePump(conn, client)
	cc.readPump(c, conn, client)
}

func (cc *ChatController) readPump(c *gin.Context, conn *websocket.Conn, client *chatClient) {
	defer func() {
		cc.Hub.unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(chatMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(chatPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(chatPongWait))
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("room", client.room).Msg("chat connection closed")
			}
			return
		}

		var in inboundChatMessage
		if err := json.Unmarshal(data, &in); err != nil {
			continue
		}
		author := strings.TrimSpace(in.Author)
		content := strings.TrimSpace(in.Content)
		if content == "" {
			continue
		}
		if author == "" {
			author = "guest"
		}
		author = truncateRunes(author, chatMaxAuthorLen)

		saved, err := cc.Chat.Save(c.Request.Context(), &models.ChatMessage{
			Room:    client.room,
			Author:  author,
			Content: content,
		})
		if err != nil {
			log.Error().Err(err).Str("room", client.room).Msg("failed to save chat message")
			continue
		}

		payload, err := json.Marshal(saved)
		if err != nil {
			continue
		}
		cc.Hub.broadcast(client.room, payload)
	}
}

func (cc *ChatController) writePump(conn *websocket.Conn, client *chatClient) {
	ticker := time.NewTicker(chatPingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.send:
			_ = conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
