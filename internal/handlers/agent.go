// internal/handlers/agent.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/unihub-backend/internal/forms"
	"github.com/javajoker/unihub-backend/internal/i18n"
	"github.com/javajoker/unihub-backend/internal/services"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type AgentHandler struct {
	agentService *services.AgentService
}

func NewAgentHandler(agentService *services.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// GET /v1/admin/agents
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agentService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "agent")
		return
	}
	utils.SuccessResponse(c, agents)
}

// GET /v1/admin/agents/:id
func (h *AgentHandler) Get(c *gin.Context) {
	agent, err := h.agentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "agent")
		return
	}
	utils.SuccessResponse(c, agent)
}

// POST /v1/admin/agents
func (h *AgentHandler) Create(c *gin.Context) {
	var in forms.AgentInput
	if !bindJSON(c, &in) {
		return
	}

	adminID, _ := utils.GetAdminIDFromContext(c)
	agent, err := h.agentService.Create(c.Request.Context(), adminID, in)
	if err != nil {
		respondError(c, err, "agent")
		return
	}
	utils.CreatedResponse(c, agent)
}

// PUT /v1/admin/agents/:id
func (h *AgentHandler) Update(c *gin.Context) {
	var in forms.AgentInput
	if !bindJSON(c, &in) {
		return
	}

	agent, err := h.agentService.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err, "agent")
		return
	}
	utils.SuccessResponse(c, agent)
}

// DELETE /v1/admin/agents/:id
func (h *AgentHandler) Delete(c *gin.Context) {
	if err := h.agentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "agent")
		return
	}
	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyAgentDeleted)})
}

// POST /v1/admin/agents/photo (multipart "file")
func (h *AgentHandler) UploadPhoto(c *gin.Context) {
	files, closeAll, ok := openUploads(c, "file")
	if !ok {
		return
	}
	defer closeAll()

	url, err := h.agentService.UploadPhoto(c.Request.Context(), files[0])
	if err != nil {
		respondError(c, err, "agent")
		return
	}
	utils.CreatedResponse(c, gin.H{"profilePhotoURL": url})
}
