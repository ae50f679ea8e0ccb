package handler

import (
	"net/http"

	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/service"
)

type TemplateHandler struct {
	templateService *service.TemplateService
}

func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List is public: contract templates are reference data, not user-owned.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	templates, err := h.templateService.Templates(category)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if templates == nil {
		templates = []*model.ContractTemplate{}
	}

	writeData(w, http.StatusOK, templates)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	templateID := r.PathValue("id")

	template, err := h.templateService.ByID(templateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, template)
}

type createTemplateRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	FileKey     *string `json:"file_key"`
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if req.Title == "" || req.Category == "" {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "title and category are required")
		return
	}

	template, err := h.templateService.Create(req.Title, req.Category, req.Description, req.FileKey)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, template)
}

type updateTemplateRequest struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	FileKey     *string `json:"file_key"`
}

func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	templateID := r.PathValue("id")

	var req updateTemplateRequest
	err := decodeJSON(r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	template, err := h.templateService.Update(templateID, service.TemplateUpdate{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		FileKey:     req.FileKey,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, template)
}

func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	templateID := r.PathValue("id")

	err := h.templateService.Delete(templateID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
