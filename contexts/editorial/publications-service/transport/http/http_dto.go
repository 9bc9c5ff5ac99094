package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatePublicationRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`

	// Optional review metadata carried on the draft from day one.
	EditorName      string `json:"editor_name,omitempty"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	ReviewComments  string `json:"review_comments,omitempty"`
}

type ChangeStatusRequest struct {
	EditorName      string `json:"editor_name"`
	RejectionReason string `json:"rejection_reason"`
	ReviewComments  string `json:"review_comments"`
	Reason          string `json:"reason"`
}

type AuthorSummaryDTO struct {
	AuthorID     string `json:"author_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Biography    string `json:"biography,omitempty"`
	Organization string `json:"organization,omitempty"`
}

type PublicationDTO struct {
	PublicationID   string            `json:"publication_id"`
	Title           string            `json:"title"`
	Content         string            `json:"content"`
	AuthorID        string            `json:"author_id"`
	Status          string            `json:"status"`
	ReviewComments  string            `json:"review_comments,omitempty"`
	EditorName      string            `json:"editor_name,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
	Author          *AuthorSummaryDTO `json:"author,omitempty"`
}

type CreatePublicationResponse struct {
	Publication PublicationDTO `json:"publication"`
}

type GetPublicationResponse struct {
	Publication PublicationDTO `json:"publication"`
}

type ListPublicationsResponse struct {
	Items      []PublicationDTO `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalItems int64            `json:"total_items"`
	TotalPages int              `json:"total_pages"`
}

type ChangeStatusResponse struct {
	Publication PublicationDTO `json:"publication"`
}

type StatusChangeDTO struct {
	ChangeID   string `json:"change_id"`
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status"`
	Reason     string `json:"reason,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type HistoryResponse struct {
	PublicationID string            `json:"publication_id"`
	Items         []StatusChangeDTO `json:"items"`
}
