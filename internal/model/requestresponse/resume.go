package requestresponse

// ResumeCreateRequest : метаданные загружаемого резюме
type ResumeCreateRequest struct {
	FilenameOriginal string  `json:"filename_original" example:"resume.pdf"`
	ContentType      string  `json:"content_type" example:"application/pdf"`
	SizeBytes        int64   `json:"size_bytes" example:"102400"`
	JobUUID          *string `json:"job_uuid,omitempty"`
}

// ResumeUploadResponse : presigned URL для загрузки файла
type ResumeUploadResponse struct {
	ResumeUUID string `json:"resume_uuid"`
	UploadURL  string `json:"upload_url"`
	S3Key      string `json:"s3_key"`
}

// ResumeDownloadResponse : presigned URL для скачивания файла
type ResumeDownloadResponse struct {
	DownloadURL string `json:"download_url"`
}
