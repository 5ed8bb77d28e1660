package model

import "time"

type Resume struct {
	UUID             string    `db:"uuid" json:"uuid"`
	OwnerUUID        string    `db:"owner_uuid" json:"owner_uuid"`
	FilenameOriginal string    `db:"filename_original" json:"filename_original"`
	ContentType      string    `db:"content_type" json:"content_type"`
	SizeBytes        int64     `db:"size_bytes" json:"size_bytes"`
	S3Key            string    `db:"s3_key" json:"s3_key"`
	JobUUID          *string   `db:"job_uuid" json:"job_uuid,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// ResumeUploadTicket : presigned PUT URL и ключ объекта для загрузки файла
type ResumeUploadTicket struct {
	UploadURL string `json:"upload_url"`
	S3Key     string `json:"s3_key"`
	Bucket    string `json:"bucket"`
}
