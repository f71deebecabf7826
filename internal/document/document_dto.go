package document

import "time"

type VerifyDocumentRequest struct {
	Outcome string `json:"outcome" binding:"required,oneof=verified failed"`
	Note    string `json:"note" binding:"max=500"`
}

type DocumentResponse struct {
	ID          string     `json:"id"`
	EmployeeID  string     `json:"employee_id"`
	Type        string     `json:"type"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	SizeBytes   int64      `json:"size_bytes"`
	Status      string     `json:"status"`
	Note        string     `json:"note,omitempty"`
	VerifiedBy  string     `json:"verified_by,omitempty"`
	VerifiedAt  *time.Time `json:"verified_at,omitempty"`
	UploadedAt  time.Time  `json:"uploaded_at"`
}

func mapToDocumentResponse(d *Document) DocumentResponse {
	resp := DocumentResponse{
		ID:          d.ID.String(),
		EmployeeID:  d.EmployeeID.String(),
		Type:        d.Type,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Status:      d.Status,
		Note:        d.Note,
		VerifiedAt:  d.VerifiedAt,
		UploadedAt:  d.CreatedAt,
	}
	if d.VerifiedBy != nil {
		resp.VerifiedBy = d.VerifiedBy.String()
	}
	return resp
}
