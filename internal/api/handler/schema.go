package handler

// --- Form types (browser routes) ---

type signupForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type applicationForm struct {
	Company     string `form:"company"     validate:"required"`
	Role        string `form:"role"        validate:"required"`
	Category    string `form:"category"`
	Location    string `form:"location"`
	Flexibility string `form:"flexibility"`
	Status      string `form:"status"      validate:"required,oneof=Applied Interviewing Offer Rejected Accepted"`
	AppliedDate string `form:"date"        validate:"required,applieddate"`
	Link        string `form:"link"        validate:"omitempty,url"`
}

// trackForm carries the /track search-bar choice: a status label,
// "ascending", "descending", or empty for the default view.
type trackForm struct {
	Status string `form:"status"`
}

// --- JSON API response types ---

// errorResponse is the error envelope returned on API 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// applicationResponse is one record in API list responses.
type applicationResponse struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	Category    string `json:"category,omitempty"`
	Location    string `json:"location,omitempty"`
	Flexibility string `json:"flexibility,omitempty"`
	Status      string `json:"status"`
	AppliedDate string `json:"applied_date"`
	Link        string `json:"link,omitempty"`
}

type listApplicationsResponse struct {
	Data  []applicationResponse `json:"data"`
	Total int                   `json:"total"`
}

// summaryResponse mirrors the dashboard counts for the JSON API.
type summaryResponse struct {
	Total        int64 `json:"total"`
	WeekCount    int64 `json:"week_count"`
	MonthCount   int64 `json:"month_count"`
	Accepted     int64 `json:"accepted"`
	Interviewing int64 `json:"interviewing"`
	Rejected     int64 `json:"rejected"`
}
