package request

type OpenSlotsRequest struct {
	Date    string   `json:"date" binding:"required"`
	Windows []string `json:"windows" binding:"required,min=1"`
}
