package payout

// RequestResponse is the JSON shape for payout requests.
type RequestResponse struct {
	ID          string  `json:"id"`
	RealtorID   string  `json:"realtor_id"`
	Amount      string  `json:"amount"`
	Status      string  `json:"status"`
	RequestedAt string  `json:"requested_at"`
	ClosedAt    *string `json:"closed_at,omitempty"`
}

func ToRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:          r.ID,
		RealtorID:   r.RealtorID,
		Amount:      r.Amount.StringFixed(2),
		Status:      string(r.Status),
		RequestedAt: r.RequestedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.ClosedAt != nil {
		closed := r.ClosedAt.Format("2006-01-02T15:04:05Z07:00")
		resp.ClosedAt = &closed
	}
	return resp
}
