// internal/forms/agent.go
package forms

import (
	"strings"

	"github.com/javajoker/unihub-backend/internal/models"
	"github.com/javajoker/unihub-backend/internal/utils"
)

type AgentInput struct {
	Name            *string `json:"name"`
	Phone           *string `json:"phone"`
	WhatsappNumber  *string `json:"whatsappNumber"`
	ProfilePhotoURL *string `json:"profilePhotoURL"`
	IsActive        *bool   `json:"isActive"`
}

// AgentForm stages an agent. New agents start active.
type AgentForm struct {
	id    string
	agent models.Agent
}

func NewAgentForm() *AgentForm {
	return &AgentForm{agent: models.Agent{IsActive: true}}
}

func EditAgentForm(a *models.Agent) *AgentForm {
	return &AgentForm{id: a.ID, agent: *a}
}

func (f *AgentForm) Editing() bool {
	return f.id != ""
}

func (f *AgentForm) Apply(in AgentInput) {
	models.AgentUpdate{
		Name:            in.Name,
		Phone:           in.Phone,
		WhatsappNumber:  in.WhatsappNumber,
		ProfilePhotoURL: in.ProfilePhotoURL,
		IsActive:        in.IsActive,
	}.Apply(&f.agent)
}

func (f *AgentForm) SetPhoto(url string) {
	f.agent.ProfilePhotoURL = url
}

// Agent validates the staged values and returns the agent to save.
func (f *AgentForm) Agent() (models.Agent, error) {
	a := f.agent
	a.ID = f.id
	a.Name = strings.TrimSpace(a.Name)
	a.Phone = strings.TrimSpace(a.Phone)
	a.WhatsappNumber = strings.TrimSpace(a.WhatsappNumber)
	a.ProfilePhotoURL = strings.TrimSpace(a.ProfilePhotoURL)

	if err := utils.ValidateStruct(a); err != nil {
		return models.Agent{}, err
	}
	return a, nil
}

// Update returns every staged field as a full replacement.
func (f *AgentForm) Update() (models.AgentUpdate, error) {
	a, err := f.Agent()
	if err != nil {
		return models.AgentUpdate{}, err
	}
	return models.AgentUpdate{
		Name:            &a.Name,
		Phone:           &a.Phone,
		WhatsappNumber:  &a.WhatsappNumber,
		ProfilePhotoURL: &a.ProfilePhotoURL,
		IsActive:        &a.IsActive,
	}, nil
}
