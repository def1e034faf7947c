package router

import (
	"net/http"

	"notesapp/config"
	noteHandler "notesapp/internal/note"
	noteRepository "notesapp/internal/note/repository"
	noteService "notesapp/internal/note/service"
	"notesapp/internal/token"
	userHandler "notesapp/internal/user"
	userRepository "notesapp/internal/user/repository"
	userService "notesapp/internal/user/service"
	"notesapp/middleware"
	"notesapp/pkg/response"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
)

func Setup(db *sqlx.DB, cfg *config.Config) http.Handler {
	tokens := token.NewService(cfg.TokenSecret, cfg.TokenTTL)

	users := userHandler.NewUserHandler(
		userService.NewUserService(userRepository.NewUserRepository(db), tokens, cfg.BcryptCost),
	)
	notes := noteHandler.NewNoteHandler(
		noteService.NewNoteService(noteRepository.NewNoteRepository(db)),
	)

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Fail(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Fail(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Public
	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		response.OK(w, "", response.Payload{"data": "hello world"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/create-account", users.CreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/login", users.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", users.Logout).Methods(http.MethodPost)

	// Authenticated
	api := r.NewRoute().Subrouter()
	api.Use(middleware.AuthMiddleware(tokens))
	api.HandleFunc("/get-user", users.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/get-all-users", users.GetAllUsers).Methods(http.MethodGet)
	api.HandleFunc("/add-note", notes.AddNote).Methods(http.MethodPost)
	api.HandleFunc("/edit-note/{noteId}", notes.EditNote).Methods(http.MethodPut)
	api.HandleFunc("/get-all-notes", notes.GetAllNotes).Methods(http.MethodGet)
	api.HandleFunc("/delete-note/{noteId}", notes.DeleteNote).Methods(http.MethodDelete)
	api.HandleFunc("/update-note-pinned/{noteId}", notes.UpdateNotePinned).Methods(http.MethodPut)
	api.HandleFunc("/search-notes", notes.SearchNotes).Methods(http.MethodGet)

	var h http.Handler = r
	h = middleware.RequestLogger(h)
	h = middleware.Recoverer(h)
	return middleware.CORSMiddleware(cfg.AllowedOrigins)(h)
}
