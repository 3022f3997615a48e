package requerimento

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/lmoreira/requerimento-service/internal/transport"
)

type ServiceAPI interface {
	GetAll() ([]*Requerimento, error)
	GetByID(reqNum int64) (*Requerimento, error)
	Create(dto CreateRequerimentoDTO) (*Requerimento, error)
	Update(reqNum int64, dto UpdateRequerimentoDTO) (*Requerimento, error)
	Delete(reqNum int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(base *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: base, Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{reqNum}", h.Get)
	r.Put("/{reqNum}", h.Update)
	r.Patch("/{reqNum}", h.Update)
	r.Delete("/{reqNum}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.GetAll()
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	reqNum, ok := h.parseReqNum(w, r)
	if !ok {
		return
	}
	row, err := h.Service.GetByID(reqNum)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateRequerimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := h.Service.Create(dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, row)
}

// Update serves both PUT and PATCH. The DTO only applies fields present in
// the payload, which matches partial-update semantics; a full update simply
// supplies every field.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	reqNum, ok := h.parseReqNum(w, r)
	if !ok {
		return
	}
	var dto UpdateRequerimentoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := h.Service.Update(reqNum, dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, row)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	reqNum, ok := h.parseReqNum(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(reqNum); err != nil {
		h.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseReqNum(w http.ResponseWriter, r *http.Request) (int64, bool) {
	reqNum, err := strconv.ParseInt(chi.URLParam(r, "reqNum"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid req_num")
		return 0, false
	}
	return reqNum, true
}
