package request

type GateScanRequest struct {
	TicketNumber string  `json:"ticket_number" binding:"required"`
	GateID       string  `json:"gate_id" binding:"required"`
	CameraRef    *string `json:"camera_ref,omitempty"`
}

func (r GateScanRequest) GetCameraRef() string {
	if r.CameraRef == nil {
		return ""
	}
	return *r.CameraRef
}
