package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/services/archive"
)

type tagResp struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type tagReq struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (h *Handler) tagId(w http.ResponseWriter, r *http.Request) (int, bool) {
	tagId, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		h.Error(w, http.StatusNotFound, archive.ErrTagNotFound.Error())
		return 0, false
	}
	return tagId, true
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.archive.ListTags(r.Context())
	if err != nil {
		h.archiveError(w, err)
		return
	}

	resp := make([]tagResp, 0, len(tags))
	for _, tag := range tags {
		resp = append(resp, tagResp{Id: tag.Id, Name: tag.Name, Color: tag.Color})
	}
	h.JSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req tagReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	tag, err := h.archive.CreateTag(r.Context(), domain.Tag{Name: req.Name, Color: req.Color})
	if err != nil {
		h.archiveError(w, err)
		return
	}

	h.JSON(w, http.StatusCreated, tagResp{Id: tag.Id, Name: tag.Name, Color: tag.Color})
}

func (h *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	tagId, ok := h.tagId(w, r)
	if !ok {
		return
	}

	var req tagReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		h.Error(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := h.archive.UpdateTag(r.Context(), domain.Tag{Id: tagId, Name: req.Name, Color: req.Color}); err != nil {
		h.archiveError(w, err)
		return
	}

	h.JSON(w, http.StatusOK, tagResp{Id: tagId, Name: req.Name, Color: req.Color})
}

func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	tagId, ok := h.tagId(w, r)
	if !ok {
		return
	}

	if err := h.archive.DeleteTag(r.Context(), tagId); err != nil {
		h.archiveError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
