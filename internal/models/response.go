package models

// uniform error payload
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

// ErrorResponse doubles as an error so Validate() can hand it straight to the middleware.
func (e *ErrorResponse) Error() string {
	return e.Message
}

// a single field error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// returned by POST /test-responses
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// returned by POST /admin/init-data
type InitDataResponse struct {
	Message           string `json:"message"`
	CategoriesCreated int    `json:"categories_created,omitempty"`
}

// returned by GET /admin/stats
type StatsResponse struct {
	TotalTemplates   int64 `json:"total_templates"`
	TotalCustomTests int64 `json:"total_custom_tests"`
	TotalResponses   int64 `json:"total_responses"`
	TotalCategories  int64 `json:"total_categories"`
}

// user-facing messages, kept in the platform's language
const (
	MsgTestNotFound       = "Тест не найден"
	MsgInvalidCredentials = "Неверные учетные данные"
	MsgAnswersSaved       = "Ответы сохранены"
	MsgAlreadyInitialized = "Данные уже инициализированы"
	MsgInitialized        = "Данные успешно инициализированы"
)
