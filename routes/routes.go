package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/dopagraming/wastewater-records/handlers"
	"github.com/dopagraming/wastewater-records/middleware"
	"github.com/dopagraming/wastewater-records/pkg/filestore"
	"github.com/dopagraming/wastewater-records/services"
)

// Deps carries everything the route table needs; nothing here is ambient
// global state.
type Deps struct {
	DB        *gorm.DB
	JWTSecret []byte
	Files     *filestore.Store
}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(deps Deps) http.Handler {
	r := mux.NewRouter()

	users := services.NewUserService(deps.DB)
	auth := handlers.NewAuthHandler(users, deps.JWTSecret)
	sectors := handlers.NewSectorHandler(services.NewSectorService(deps.DB))
	councils := handlers.NewCouncilHandler(services.NewCouncilService(deps.DB), deps.Files)
	components := handlers.NewComponentHandler(services.NewComponentService(deps.DB))
	businesses := handlers.NewBusinessHandler(services.NewBusinessService(deps.DB))

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/api/health", handleHealth).Methods("GET")
	r.HandleFunc("/api/auth/register", auth.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", auth.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(deps.Files.Dir()))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.NewAuth(deps.JWTSecret, users).Middleware)

	api.HandleFunc("/auth/me", auth.Me).Methods("GET")
	api.HandleFunc("/businesses/export", businesses.Export).Methods("GET")

	registerCRUDRoutes(api, "/sectors", crudHandlers{
		getAll: sectors.List,
		create: sectors.Create,
		getOne: sectors.Get,
		update: sectors.Update,
		delete: sectors.Delete,
	})
	registerCRUDRoutes(api, "/councils", crudHandlers{
		getAll: councils.List,
		create: councils.Create,
		getOne: councils.Get,
		update: councils.Update,
		delete: councils.Delete,
	})
	registerCRUDRoutes(api, "/components", crudHandlers{
		getAll: components.List,
		create: components.Create,
		getOne: components.Get,
		update: components.Update,
		delete: components.Delete,
	})
	registerCRUDRoutes(api, "/businesses", crudHandlers{
		getAll: businesses.List,
		create: businesses.Create,
		getOne: businesses.Get,
		update: businesses.Update,
		delete: businesses.Delete,
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Server is running!"})
}

// crudHandlers holds handlers for a CRUD resource
type crudHandlers struct {
	getAll func(http.ResponseWriter, *http.Request)
	create func(http.ResponseWriter, *http.Request)
	getOne func(http.ResponseWriter, *http.Request)
	update func(http.ResponseWriter, *http.Request)
	delete func(http.ResponseWriter, *http.Request)
}

// registerCRUDRoutes registers standard CRUD routes for a resource
func registerCRUDRoutes(router *mux.Router, path string, h crudHandlers) {
	router.HandleFunc(path, h.getAll).Methods("GET")
	router.HandleFunc(path, h.create).Methods("POST")
	router.HandleFunc(path+"/{id}", h.getOne).Methods("GET")
	router.HandleFunc(path+"/{id}", h.update).Methods("PUT")
	router.HandleFunc(path+"/{id}", h.delete).Methods("DELETE")
}
