package upload

// BatchStatus summarizes the outcome of one upload batch.
type BatchStatus string

const (
	// StatusAllSucceeded means every attachment was stored.
	StatusAllSucceeded BatchStatus = "all-succeeded"
	// StatusPartialSuccess means at least one attachment failed.
	StatusPartialSuccess BatchStatus = "partial-success"
	// StatusNoInput means the request carried no file fields at all.
	StatusNoInput BatchStatus = "no-input"
)

// UploadResult describes one successfully stored attachment.
type UploadResult struct {
	FieldName  string `json:"field_name"`
	Filename   string `json:"filename"`
	StorageKey string `json:"s3_key"`
	URL        string `json:"url"`
}

// UploadError describes one attachment that could not be stored. Failures
// are data, not exceptions: they ride along in the batch report and never
// abort the remaining attachments.
type UploadError struct {
	FieldName string `json:"field_name"`
	Filename  string `json:"filename"`
	Message   string `json:"message"`
}

// BatchReport collects the outcome of processing one multipart form.
// Uploaded holds an entry for every file field seen in the form, even when
// all of that field's attachments failed.
type BatchReport struct {
	Uploaded map[string][]UploadResult
	Errors   []UploadError
}

// Status derives the batch outcome from the collected errors.
func (r *BatchReport) Status() BatchStatus {
	if len(r.Uploaded) == 0 {
		return StatusNoInput
	}
	if len(r.Errors) > 0 {
		return StatusPartialSuccess
	}
	return StatusAllSucceeded
}

// BatchResponse is the JSON body returned for processed batches.
type BatchResponse struct {
	Message       string                    `json:"message"`
	UploadedFiles map[string][]UploadResult `json:"uploaded_files"`
	Errors        []UploadError             `json:"errors,omitempty"`
}

// Response renders the report into its wire shape.
func (r *BatchReport) Response() BatchResponse {
	message := "All files uploaded successfully"
	if len(r.Errors) > 0 {
		message = "Upload process completed"
	}
	return BatchResponse{
		Message:       message,
		UploadedFiles: r.Uploaded,
		Errors:        r.Errors,
	}
}
