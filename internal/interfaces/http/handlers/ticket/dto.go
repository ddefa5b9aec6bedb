package ticket

import (
	"github.com/gin-gonic/gin"

	"quickdesk/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Question    string   `json:"question" binding:"required" example:"VPN drops every hour"`
	Description string   `json:"description" binding:"required" example:"Since Monday the **VPN** disconnects."`
	Tags        []string `json:"tags" binding:"required" example:"vpn,network"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"in-progress"`
}

// AddCommentRequest carries the comment text under "comment"; the stored
// comment exposes it as "message".
type AddCommentRequest struct {
	Comment string `json:"comment" example:"Could you attach the client log?"`
}

// listQuery reads ?status=&tag=&q= filters.
func listQuery(c *gin.Context) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status: c.Query("status"),
		Tag:    c.Query("tag"),
		Query:  c.Query("q"),
	}
}
