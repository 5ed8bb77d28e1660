package requestresponse

// JobCreateRequest : тело запроса на создание вакансии
type JobCreateRequest struct {
	Title       string `json:"title" example:"Go разработчик"`
	Description string `json:"description" example:"Разработка backend сервисов"`
	Skills      string `json:"skills" example:"Go, PostgreSQL, Redis"`
	Experience  string `json:"experience" example:"3+ года"`
	Location    string `json:"location,omitempty" example:"Москва"`
	SalaryRange string `json:"salary_range,omitempty" example:"200000-300000"`
	JobType     string `json:"job_type,omitempty" example:"full-time"`
}

// JobUpdateRequest : изменяемые поля вакансии
type JobUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Skills      *string `json:"skills,omitempty"`
	Experience  *string `json:"experience,omitempty"`
	Location    *string `json:"location,omitempty"`
	SalaryRange *string `json:"salary_range,omitempty"`
	JobType     *string `json:"job_type,omitempty"`
	Status      *string `json:"status,omitempty" example:"closed"`
}
