package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/firaol-d/clubhub/internal/domain/entity"
	"github.com/firaol-d/clubhub/internal/handler/http/dto"
	usecasecontract "github.com/firaol-d/clubhub/internal/usecase/contract"
)

// MembershipHandler serves the admin membership-review endpoints.
type MembershipHandler struct {
	membershipUseCase usecasecontract.IMembershipUseCase
	logger            usecasecontract.IAppLogger
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(membershipUseCase usecasecontract.IMembershipUseCase, logger usecasecontract.IAppLogger) *MembershipHandler {
	return &MembershipHandler{membershipUseCase: membershipUseCase, logger: logger}
}

// List handles GET /admin/memberships?status=pending.
func (h *MembershipHandler) List(c *gin.Context) {
	status := entity.MembershipStatus(c.DefaultQuery("status", string(entity.MembershipPending)))
	switch status {
	case entity.MembershipPending, entity.MembershipApproved, entity.MembershipRejected, entity.MembershipExpired:
	default:
		ErrorHandler(c, http.StatusBadRequest, "invalid membership status")
		return
	}

	page, limit := paginationParams(c)

	users, total, err := h.membershipUseCase.ListByStatus(c.Request.Context(), status, page, limit)
	if err != nil {
		RespondError(c, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.ToUserResponse(*u))
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages(total, limit),
	})
}

// Approve handles POST /admin/memberships/:userID/approve.
func (h *MembershipHandler) Approve(c *gin.Context) {
	user, err := h.membershipUseCase.Approve(c.Request.Context(), c.Param("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// Reject handles POST /admin/memberships/:userID/reject.
func (h *MembershipHandler) Reject(c *gin.Context) {
	user, err := h.membershipUseCase.Reject(c.Request.Context(), c.Param("userID"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}
