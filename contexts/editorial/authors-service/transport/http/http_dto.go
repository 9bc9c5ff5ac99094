package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateAuthorRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Biography    string `json:"biography"`
	Organization string `json:"organization"`
}

type UpdateAuthorRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Biography    string `json:"biography"`
	Organization string `json:"organization"`
}

// AuthorDTO is the wire shape of a registry record. full_name is
// derived server side so consumers never concatenate it themselves.
type AuthorDTO struct {
	AuthorID     string `json:"author_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Biography    string `json:"biography"`
	Organization string `json:"organization"`
	Active       bool   `json:"active"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type ListAuthorsResponse struct {
	Items      []AuthorDTO `json:"items"`
	Page       int         `json:"page"`
	Size       int         `json:"size"`
	TotalItems int64       `json:"total_items"`
	TotalPages int         `json:"total_pages"`
}
