package handlers

import (
	"net/http"

	"github.com/jistud/coindesk-go/internal/api/response"
	"github.com/jistud/coindesk-go/internal/service"
)

// CoinDeskHandler handles HTTP requests for the external price feed
// and its transformed view.
type CoinDeskHandler struct {
	coinDeskService *service.CoinDeskService
}

// NewCoinDeskHandler creates a new CoinDeskHandler with the provided service dependency.
func NewCoinDeskHandler(coinDeskService *service.CoinDeskService) *CoinDeskHandler {
	return &CoinDeskHandler{
		coinDeskService: coinDeskService,
	}
}

// TransformedResponse combines feed data with the locally stored
// localized name. UpdateTime is a timezone-naive local date-time.
type TransformedResponse struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localizedName"`
	UpdateTime    string `json:"updateTime"`
}

// Current handles GET requests for the raw price snapshot.
//
// Endpoint: GET /api/v1/coindesk
// Response: 200 OK with the feed document
// Error: 502 Bad Gateway when the feed is unavailable or unusable
func (h *CoinDeskHandler) Current(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.coinDeskService.GetCurrentPrice(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, snapshot)
}

// Transformed handles GET requests for the transformed feed view with
// an optional lang query parameter for localized names.
//
// Endpoint: GET /api/v1/transformed-coindesk?lang=zh-TW
// Response: 200 OK with TransformedResponse
// Error: 502 Bad Gateway when the feed is unavailable or unusable
func (h *CoinDeskHandler) Transformed(w http.ResponseWriter, r *http.Request) {
	langCode := r.URL.Query().Get("lang")

	transformed, err := h.coinDeskService.GetTransformedData(r.Context(), langCode)
	if err != nil {
		response.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, TransformedResponse{
		Name:          transformed.Name,
		LocalizedName: transformed.LocalizedName,
		UpdateTime:    transformed.UpdateTime.Format("2006-01-02T15:04:05"),
	})
}
