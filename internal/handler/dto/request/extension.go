package request

import "time"

type ExtensionRequest struct {
	NewReturnDate time.Time `json:"new_return_date" binding:"required"`
}
