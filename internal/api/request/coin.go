package request

// CoinCreateRequest is the JSON body for POST /api/v1/coins.
type CoinCreateRequest struct {
	Name      string            `json:"name"`
	I18nNames map[string]string `json:"i18nNames"`
}

// CoinUpdateRequest is the JSON body for PUT /api/v1/coins/{id}.
// I18nNames is merged into the coin's existing translation set;
// omitted languages are left untouched.
type CoinUpdateRequest struct {
	Name      string            `json:"name"`
	I18nNames map[string]string `json:"i18nNames"`
}
