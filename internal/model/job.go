package model

import "time"

type Job struct {
	UUID        string    `db:"uuid" json:"uuid"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Skills      string    `db:"skills" json:"skills"`
	Experience  string    `db:"experience" json:"experience"`
	Location    string    `db:"location" json:"location,omitempty"`
	SalaryRange string    `db:"salary_range" json:"salary_range,omitempty"`
	JobType     string    `db:"job_type" json:"job_type"` // full-time, part-time, contract
	Status      string    `db:"status" json:"status"`     // active, inactive, closed
	CreatedBy   string    `db:"created_by" json:"created_by"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
