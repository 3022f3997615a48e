package dimension

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/lmoreira/requerimento-service/internal/transport"
)

// UserHandler exposes the employee dimension CRUD.
type UserHandler struct {
	*transport.BaseHandler
	Service *UserService
}

func NewUserHandler(base *transport.BaseHandler, service *UserService) *UserHandler {
	return &UserHandler{BaseHandler: base, Service: service}
}

func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{matricula}", h.Get)
	r.Put("/{matricula}", h.Update)
	r.Patch("/{matricula}", h.Patch)
	r.Delete("/{matricula}", h.Delete)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetByMatricula(chi.URLParam(r, "matricula"))
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Create(dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Update(chi.URLParam(r, "matricula"), dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var dto PatchUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Patch(chi.URLParam(r, "matricula"), dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "matricula")); err != nil {
		h.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LookupHandler exposes one code/description dimension; the same handler type
// is mounted once per collection.
type LookupHandler struct {
	*transport.BaseHandler
	Service *LookupService
}

func NewLookupHandler(base *transport.BaseHandler, service *LookupService) *LookupHandler {
	return &LookupHandler{BaseHandler: base, Service: service}
}

func (h *LookupHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{codigo}", h.Get)
	r.Put("/{codigo}", h.Update)
	r.Patch("/{codigo}", h.Update)
	r.Delete("/{codigo}", h.Delete)
}

func (h *LookupHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Service.GetAll()
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rows)
}

func (h *LookupHandler) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.Service.GetByCodigo(chi.URLParam(r, "codigo"))
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, row)
}

func (h *LookupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto LookupDTO
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

// Update serves both PUT and PATCH: the only writable field is descricao, so
// full and partial update coincide.
func (h *LookupHandler) Update(w http.ResponseWriter, r *http.Request) {
	var dto UpdateLookupDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	row, err := h.Service.Update(chi.URLParam(r, "codigo"), dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, row)
}

func (h *LookupHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Delete(chi.URLParam(r, "codigo")); err != nil {
		h.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CargoHandler exposes the position catalog.
type CargoHandler struct {
	*transport.BaseHandler
	Service *CargoService
}

func NewCargoHandler(base *transport.BaseHandler, service *CargoService) *CargoHandler {
	return &CargoHandler{BaseHandler: base, Service: service}
}

func (h *CargoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *CargoHandler) List(w http.ResponseWriter, r *http.Request) {
	cargos, err := h.Service.GetAll()
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, cargos)
}

func (h *CargoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	cargo, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, cargo)
}

func (h *CargoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CargoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cargo, err := h.Service.Create(dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, cargo)
}

func (h *CargoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	var dto CargoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cargo, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, cargo)
}

func (h *CargoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		h.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CargoHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// RiscoHandler exposes the risk catalog.
type RiscoHandler struct {
	*transport.BaseHandler
	Service *RiscoService
}

func NewRiscoHandler(base *transport.BaseHandler, service *RiscoService) *RiscoHandler {
	return &RiscoHandler{BaseHandler: base, Service: service}
}

func (h *RiscoHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Patch("/{id}", h.Patch)
	r.Delete("/{id}", h.Delete)
}

func (h *RiscoHandler) List(w http.ResponseWriter, r *http.Request) {
	riscos, err := h.Service.GetAll()
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, riscos)
}

func (h *RiscoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	risco, err := h.Service.GetByID(id)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, risco)
}

func (h *RiscoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto CreateRiscoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	risco, err := h.Service.Create(dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, risco)
}

func (h *RiscoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	var dto CreateRiscoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	risco, err := h.Service.Update(id, dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, risco)
}

func (h *RiscoHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	var dto PatchRiscoDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	risco, err := h.Service.Patch(id, dto)
	if err != nil {
		h.HandleError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, risco)
}

func (h *RiscoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	if err := h.Service.Delete(id); err != nil {
		h.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *RiscoHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
