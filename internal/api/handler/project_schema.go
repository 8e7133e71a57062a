package handler

type createProjectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=active completed paused"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	OwnerID     int64  `json:"owner_id"    validate:"required,gt=0"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=active completed paused"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
}
