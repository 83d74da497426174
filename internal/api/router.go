package api

import (
	"net/http"

	"github.com/HillyAttic/taskboard/internal/api/handlers"
)

func NewRouter(tasks *handlers.TaskHandler, directory *handlers.DirectoryHandler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /tasks", tasks.Create)
	mux.HandleFunc("GET /tasks/{id}", tasks.Get)
	mux.HandleFunc("PATCH /tasks/{id}", tasks.Update)
	mux.HandleFunc("POST /tasks/{id}/pause", tasks.Pause)
	mux.HandleFunc("POST /tasks/{id}/resume", tasks.Resume)
	mux.HandleFunc("POST /tasks/{id}/complete", tasks.Complete)
	mux.HandleFunc("DELETE /tasks/{id}", tasks.Delete)

	mux.HandleFunc("POST /clients", directory.CreateClient)
	mux.HandleFunc("GET /clients", directory.ListClients)
	mux.HandleFunc("GET /clients/{id}", directory.GetClient)
	mux.HandleFunc("DELETE /clients/{id}", directory.DeleteClient)

	mux.HandleFunc("POST /teams", directory.CreateTeam)
	mux.HandleFunc("GET /teams", directory.ListTeams)
	mux.HandleFunc("GET /teams/{id}", directory.GetTeam)
	mux.HandleFunc("DELETE /teams/{id}", directory.DeleteTeam)

	mux.HandleFunc("POST /employees", directory.CreateEmployee)
	mux.HandleFunc("GET /employees", directory.ListEmployees)
	mux.HandleFunc("GET /employees/{id}", directory.GetEmployee)
	mux.HandleFunc("DELETE /employees/{id}", directory.DeleteEmployee)

	return mux
}
