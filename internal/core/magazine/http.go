package magazine

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/taibuivan/pressroom/internal/platform/apperr"
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

// Routes returns the router mounted at /magazines.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listMagazines)

	// Filters
	router.Get("/publisher/{publisherId}", handler.listByPublisher)
	router.Get("/genre/{genre}", handler.listByGenre)
	router.Get("/releasedAfter/{year}", handler.listReleasedAfter)
	router.Get("/priceRange", handler.listByPriceRange)

	// POST takes the owning publisher's id in the {id} slot
	router.Post("/{id}", handler.createMagazine)
	router.Get("/{id}", handler.getMagazine)
	router.Put("/{id}", handler.updateMagazine)
	router.Delete("/{id}", handler.deleteMagazine)
}

func (handler *Handler) listMagazines(writer http.ResponseWriter, request *http.Request) {
	magazines, err := handler.service.ListMagazines(request.Context(),
		requestutil.Query(request, "sortBy", constants.DefaultSortField),
		requestutil.Query(request, "order", constants.DefaultSortDirection),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, magazines)
}

func (handler *Handler) getMagazine(writer http.ResponseWriter, request *http.Request) {
	magazineID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	magazine, err := handler.service.GetMagazine(request.Context(), magazineID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, magazine)
}

func (handler *Handler) createMagazine(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Magazine
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMagazine(request.Context(), publisherID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMagazine(writer http.ResponseWriter, request *http.Request) {
	magazineID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Magazine
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateMagazine(request.Context(), magazineID, &input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler) deleteMagazine(writer http.ResponseWriter, request *http.Request) {
	magazineID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.DeleteMagazine(request.Context(), magazineID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !deleted {
		respond.Error(writer, request, apperr.EntityNotFound(EntityName, magazineID))
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) listByPublisher(writer http.ResponseWriter, request *http.Request) {
	publisherID, err := requestutil.IntParam(request, "publisherId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	magazines, err := handler.service.ListByPublisher(request.Context(), publisherID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, magazines)
}

func (handler *Handler) listByGenre(writer http.ResponseWriter, request *http.Request) {
	genre, err := requestutil.Param(request, "genre")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	magazines, err := handler.service.ListByGenre(request.Context(), genre)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, magazines)
}

func (handler *Handler) listReleasedAfter(writer http.ResponseWriter, request *http.Request) {
	year, err := requestutil.IntParam(request, "year")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	magazines, err := handler.service.ListReleasedAfter(request.Context(), year)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, magazines)
}

func (handler *Handler) listByPriceRange(writer http.ResponseWriter, request *http.Request) {
	minPrice, minErr := decimal.NewFromString(requestutil.Query(request, "minPrice", ""))
	maxPrice, maxErr := decimal.NewFromString(requestutil.Query(request, "maxPrice", ""))

	validator := &validate.Validator{}
	validator.
		Custom("minPrice", minErr != nil, "Must be a decimal number").
		Custom("maxPrice", maxErr != nil, "Must be a decimal number")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	magazines, err := handler.service.ListByPriceRange(request.Context(), minPrice, maxPrice)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, magazines)
}
