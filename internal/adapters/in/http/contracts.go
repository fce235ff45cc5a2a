package http

// GenerateOrderIDRequest is the request body for POST /api/v1/order-ids.
type GenerateOrderIDRequest struct {
	UserID     string `json:"userId"`
	OrderType  string `json:"orderType"`
	IsUrgent   bool   `json:"isUrgent"`
	IsReferred bool   `json:"isReferred"`
	IsStudent  bool   `json:"isStudent"`
}

// GenerateOrderIDResponse carries the generated identifier together with
// its decomposed components.
type GenerateOrderIDResponse struct {
	OrderID      string   `json:"orderId"`
	CityCode     string   `json:"cityCode"`
	Direction    string   `json:"direction"`
	PostalPrefix string   `json:"postalPrefix"`
	ServiceCode  string   `json:"serviceCode"`
	Sequence     string   `json:"sequence"`
	Flags        []string `json:"flags"`
}

// DailyCounter is one row of GET /api/v1/counters.
type DailyCounter struct {
	CityCode      string `json:"cityCode"`
	Volume        int    `json:"volume"`
	LastUpdatedAt string `json:"lastUpdatedAt,omitempty"`
}

// Generation is one row of GET /api/v1/generations.
type Generation struct {
	ID           string `json:"id"`
	OrderID      string `json:"orderId"`
	CityCode     string `json:"cityCode"`
	Direction    string `json:"direction"`
	PostalPrefix string `json:"postalPrefix"`
	ServiceCode  string `json:"serviceCode"`
	Sequence     string `json:"sequence"`
	UserID       string `json:"userId"`
	GeneratedAt  string `json:"generatedAt"`
	PostalCode   string `json:"postalCode,omitempty"`
	CityName     string `json:"cityName,omitempty"`
}

// Error is the common error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
