package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/http/middleware"
	"github.com/stuartcarroll/chatextract/internal/services/archive"
)

type chatResp struct {
	Uuid      string     `json:"uuid"`
	OwnerUuid string     `json:"owner_uuid"`
	Name      string     `json:"name"`
	Source    string     `json:"source"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	Tags      []tagResp  `json:"tags"`
}

type messageResp struct {
	Uuid        string              `json:"uuid"`
	Author      string              `json:"author"`
	Body        string              `json:"body"`
	SentAt      time.Time           `json:"sent_at"`
	Attachments []domain.Attachment `json:"attachments,omitempty"`
}

func toChatResp(chat domain.Chat) chatResp {
	resp := chatResp{
		Uuid:      chat.Uuid.String(),
		OwnerUuid: chat.OwnerUuid.String(),
		Name:      chat.Name,
		Source:    chat.Source,
		CreatedAt: chat.CreatedAt,
		DeletedAt: chat.DeletedAt,
		Tags:      []tagResp{},
	}
	for _, tag := range chat.Tags {
		resp.Tags = append(resp.Tags, tagResp{Id: tag.Id, Name: tag.Name, Color: tag.Color})
	}
	return resp
}

func (h *Handler) chatUuid(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	chatUuid, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		h.Error(w, http.StatusNotFound, archive.ErrChatNotFound.Error())
		return uuid.Nil, false
	}
	return chatUuid, true
}

// archiveError maps service errors onto HTTP statuses. Invisible chats
// read as missing, forbidden mutations as forbidden.
func (h *Handler) archiveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, archive.ErrChatNotFound):
		h.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, archive.ErrTagNotFound):
		h.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, archive.ErrPermissionDenied):
		h.Error(w, http.StatusForbidden, err.Error())
	default:
		h.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	filter := domain.ChatFilter{
		Tag:   r.URL.Query().Get("tag"),
		Query: r.URL.Query().Get("q"),
	}

	chats, err := h.archive.ListChats(r.Context(), user, filter)
	if err != nil {
		h.archiveError(w, err)
		return
	}

	resp := make([]chatResp, 0, len(chats))
	for _, chat := range chats {
		resp = append(resp, toChatResp(chat))
	}
	h.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	chat, err := h.archive.GetChat(r.Context(), user, chatUuid)
	if err != nil {
		h.archiveError(w, err)
		return
	}

	h.JSON(w, http.StatusOK, toChatResp(*chat))
}

func (h *Handler) ChatMessages(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	messages, err := h.archive.ChatMessages(r.Context(), user, chatUuid)
	if err != nil {
		h.archiveError(w, err)
		return
	}

	resp := make([]messageResp, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, messageResp{
			Uuid:        msg.Uuid.String(),
			Author:      msg.Author,
			Body:        msg.Body,
			SentAt:      msg.SentAt,
			Attachments: msg.Attachments,
		})
	}
	h.JSON(w, http.StatusOK, resp)
}

func (h *Handler) RenameChat(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.archive.RenameChat(r.Context(), user, chatUuid, req.Name); err != nil {
		h.archiveError(w, err)
		return
	}

	h.JSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

func (h *Handler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	if err := h.archive.DeleteChat(r.Context(), user, chatUuid); err != nil {
		h.archiveError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RestoreChat(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	if err := h.archive.RestoreChat(r.Context(), user, chatUuid); err != nil {
		h.archiveError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) PurgeChat(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	if err := h.archive.PurgeChat(r.Context(), user, chatUuid); err != nil {
		h.archiveError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetChatTags(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	chatUuid, ok := h.chatUuid(w, r)
	if !ok {
		return
	}

	var req struct {
		TagIds []int `json:"tag_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Error(w, http.StatusBadRequest, "tag_ids is required")
		return
	}

	if err := h.archive.SetChatTags(r.Context(), user, chatUuid, req.TagIds); err != nil {
		h.archiveError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
