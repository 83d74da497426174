package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/HillyAttic/taskboard/internal/model"
	"github.com/HillyAttic/taskboard/internal/repository"
)

// DirectoryHandler serves the thin CRUD records the scheduling core
// references: clients, teams, and employees. No temporal logic lives here.
type DirectoryHandler struct {
	clients   *repository.ClientRepository
	teams     *repository.TeamRepository
	employees *repository.EmployeeRepository
}

func NewDirectoryHandler(clients *repository.ClientRepository, teams *repository.TeamRepository, employees *repository.EmployeeRepository) *DirectoryHandler {
	return &DirectoryHandler{clients: clients, teams: teams, employees: employees}
}

// POST /clients
func (h *DirectoryHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var client model.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if client.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	client.ID = uuid.NewString()
	if err := h.clients.Create(r.Context(), &client); err != nil {
		writeError(w, http.StatusInternalServerError, "failed creating client")
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

// GET /clients
func (h *DirectoryHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clients.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed listing clients")
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

// GET /clients/{id}
func (h *DirectoryHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	client, ok, err := h.clients.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting client")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, client)
}

// DELETE /clients/{id}
func (h *DirectoryHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.clients.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed deleting client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /teams
func (h *DirectoryHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var team model.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if team.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	team.ID = uuid.NewString()
	if err := h.teams.Create(r.Context(), &team); err != nil {
		writeError(w, http.StatusInternalServerError, "failed creating team")
		return
	}
	writeJSON(w, http.StatusCreated, team)
}

// GET /teams
func (h *DirectoryHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teams.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed listing teams")
		return
	}
	writeJSON(w, http.StatusOK, teams)
}

// GET /teams/{id}
func (h *DirectoryHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, ok, err := h.teams.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting team")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "team not found")
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// DELETE /teams/{id}
func (h *DirectoryHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.teams.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed deleting team")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /employees
func (h *DirectoryHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var employee model.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if employee.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	employee.ID = uuid.NewString()
	if err := h.employees.Create(r.Context(), &employee); err != nil {
		writeError(w, http.StatusInternalServerError, "failed creating employee")
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

// GET /employees?team_id=...
func (h *DirectoryHandler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var (
		employees []model.Employee
		err       error
	)
	if teamID := r.URL.Query().Get("team_id"); teamID != "" {
		employees, err = h.employees.ListByTeam(r.Context(), teamID)
	} else {
		employees, err = h.employees.ListAll(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed listing employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// GET /employees/{id}
func (h *DirectoryHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee, ok, err := h.employees.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed getting employee")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "employee not found")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

// DELETE /employees/{id}
func (h *DirectoryHandler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.employees.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusInternalServerError, "failed deleting employee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
