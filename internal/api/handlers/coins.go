package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jistud/coindesk-go/internal/api/request"
	"github.com/jistud/coindesk-go/internal/api/response"
	"github.com/jistud/coindesk-go/internal/apperrors"
	"github.com/jistud/coindesk-go/internal/model"
	"github.com/jistud/coindesk-go/internal/service"
	"github.com/jistud/coindesk-go/internal/validation"
)

// CoinHandler handles HTTP requests for coin directory endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the coinService.
type CoinHandler struct {
	coinService *service.CoinService
}

// NewCoinHandler creates a new CoinHandler with the provided service dependency.
func NewCoinHandler(coinService *service.CoinService) *CoinHandler {
	return &CoinHandler{
		coinService: coinService,
	}
}

// CoinSummaryResponse represents a coin in list responses.
type CoinSummaryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CoinResponse represents a coin with all details including i18n names.
type CoinResponse struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	I18nNames map[string]string `json:"i18nNames,omitempty"`
}

// Coins handles GET requests to list coins, optionally filtered by
// exactly one of the id or name query parameters.
//
// Endpoint: GET /api/v1/coins
// Response: 200 OK with array of CoinSummaryResponse
// Error: 400 Bad Request if both filters are supplied or id is not numeric
func (h *CoinHandler) Coins(w http.ResponseWriter, r *http.Request) {
	idParam := r.URL.Query().Get("id")
	nameParam := r.URL.Query().Get("name")

	if idParam != "" && nameParam != "" {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrAmbiguousFilter.Error())
		return
	}

	var coins []model.Coin

	switch {
	case idParam != "":
		id, err := strconv.ParseInt(idParam, 10, 64)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error())
			return
		}
		coin, err := h.coinService.FindByID(id)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "failed to retrieve coins")
			return
		}
		if coin != nil {
			coins = append(coins, *coin)
		}
	case nameParam != "":
		coin, err := h.coinService.FindByName(nameParam)
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "failed to retrieve coins")
			return
		}
		if coin != nil {
			coins = append(coins, *coin)
		}
	default:
		var err error
		coins, err = h.coinService.FindAll()
		if err != nil {
			response.RespondError(w, http.StatusInternalServerError, "failed to retrieve coins")
			return
		}
	}

	summaries := make([]CoinSummaryResponse, len(coins))
	for i, c := range coins {
		summaries[i] = CoinSummaryResponse{
			ID:   c.ID,
			Name: c.Name,
		}
	}

	response.RespondJSON(w, http.StatusOK, summaries)
}

// CoinByID handles GET requests to retrieve one coin with its translations.
//
// Endpoint: GET /api/v1/coins/{id}
// Response: 200 OK with CoinResponse
// Error: 400 Bad Request for a non-numeric id, 404 Not Found for an unknown one
func (h *CoinHandler) CoinByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error())
		return
	}

	coin, err := h.coinService.FindByID(id)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to retrieve coin")
		return
	}
	if coin == nil {
		response.RespondError(w, http.StatusNotFound, apperrors.ErrCoinNotFound.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, toCoinResponse(*coin))
}

// CreateCoin handles POST requests to create a coin with optional translations.
//
// Endpoint: POST /api/v1/coins
// Response: 201 Created with CoinResponse
// Error: 400 Bad Request on validation failure, 409 Conflict on duplicate name
func (h *CoinHandler) CreateCoin(w http.ResponseWriter, r *http.Request) {
	var req request.CoinCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateCreateCoin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	coin, err := h.coinService.CreateCoin(r.Context(), req.Name, req.I18nNames)
	if err != nil {
		respondCoinError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, toCoinResponse(coin))
}

// UpdateCoin handles PUT requests to rename a coin and merge translations.
//
// Endpoint: PUT /api/v1/coins/{id}
// Response: 200 OK with CoinResponse
// Error: 400 Bad Request on validation failure, 404 Not Found for an
// unknown id, 409 Conflict when the new name collides with another coin
func (h *CoinHandler) UpdateCoin(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, apperrors.ErrInvalidID.Error())
		return
	}

	var req request.CoinUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validation.ValidateUpdateCoin(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	coin, err := h.coinService.UpdateCoin(r.Context(), id, req.Name, req.I18nNames)
	if err != nil {
		respondCoinError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, toCoinResponse(coin))
}

func toCoinResponse(coin model.Coin) CoinResponse {
	return CoinResponse{
		ID:        coin.ID,
		Name:      coin.Name,
		CreatedAt: coin.CreatedAt,
		UpdatedAt: coin.UpdatedAt,
		I18nNames: coin.I18nNames,
	}
}

// respondCoinError maps coin directory service errors to HTTP statuses.
func respondCoinError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEmptyName):
		response.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrCoinNotFound):
		response.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicateCoinName):
		response.RespondError(w, http.StatusConflict, err.Error())
	default:
		response.RespondError(w, http.StatusInternalServerError, "an unexpected error occurred")
	}
}
