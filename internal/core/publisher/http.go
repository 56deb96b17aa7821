package publisher

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/pressroom/internal/platform/constants"
	requestutil "github.com/taibuivan/pressroom/internal/platform/request"
	"github.com/taibuivan/pressroom/internal/platform/respond"
	"github.com/taibuivan/pressroom/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /publishers.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listPublishers)
	router.Post("/", handler.createPublisher)

	// Derived queries (static segments win over /{id})
	router.Get("/count", handler.countPublishers)
	router.Get("/search", handler.searchByName)
	router.Get("/byName/{name}", handler.findByName)
	router.Get("/emailDomain/{domain}", handler.findByEmailDomain)
	router.Get("/withMagazines", handler.findWithMagazines)
	router.Get("/withMinMagazines/{min}", handler.findWithMinMagazines)
	router.Get("/magazineCounts", handler.magazineCounts)

	// Bulk mutations
	router.Patch("/email", handler.updateEmailByName)
	router.Delete("/byName/{name}", handler.deleteByName)

	router.Get("/{id}", handler.getPublisher)
	router.Put("/{id}", handler.updatePublisher)
	router.Delete("/{id}", handler.deletePublisher)
}

func (handler *Handler) listPublishers(writer http.ResponseWriter, request *http.Request) {
	publishers, err := handler.service.ListPublishers(request.Context(),
		requestutil.Query(request, "sortBy", constants.DefaultSortField),
		requestutil.Query(request, "direction", constants.DefaultSortDirection),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) getPublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	publisher, err := handler.service.GetPublisher(request.Context(), publisherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publisher)
}

func (handler *Handler) createPublisher(writer http.ResponseWriter, request *http.Request) {
	var input Publisher
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePublisher(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Publisher
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePublisher(request.Context(), publisherID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePublisher(request.Context(), publisherID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) findByName(writer http.ResponseWriter, request *http.Request) {
	name, err := requestutil.Param(request, "name")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishers, err := handler.service.FindByName(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) searchByName(writer http.ResponseWriter, request *http.Request) {
	keyword := requestutil.Query(request, "keyword", "")
	if err := (&validate.Validator{}).Required("keyword", keyword).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishers, err := handler.service.SearchByName(request.Context(), keyword)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) countPublishers(writer http.ResponseWriter, request *http.Request) {
	total, err := handler.service.CountPublishers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{constants.FieldCount: total})
}

func (handler *Handler) findByEmailDomain(writer http.ResponseWriter, request *http.Request) {
	domain, err := requestutil.Param(request, "domain")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishers, err := handler.service.FindByEmailDomain(request.Context(), domain)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) findWithMagazines(writer http.ResponseWriter, request *http.Request) {
	publishers, err := handler.service.FindWithMagazines(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) findWithMinMagazines(writer http.ResponseWriter, request *http.Request) {
	minMagazines, err := requestutil.IntParam(request, "min")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	publishers, err := handler.service.FindWithMinMagazines(request.Context(), minMagazines)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publishers)
}

func (handler *Handler) magazineCounts(writer http.ResponseWriter, request *http.Request) {
	counts, err := handler.service.MagazineCounts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, counts)
}

func (handler *Handler) updateEmailByName(writer http.ResponseWriter, request *http.Request) {
	name := requestutil.Query(request, "name", "")
	email := requestutil.Query(request, "email", "")

	validator := &validate.Validator{}
	validator.Required("name", name).Required("email", email)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateEmailByName(request.Context(), email, name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{constants.FieldUpdated: updated})
}

func (handler *Handler) deleteByName(writer http.ResponseWriter, request *http.Request) {
	name, err := requestutil.Param(request, "name")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteByName(request.Context(), name)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]int64{constants.FieldDeleted: deleted})
}
