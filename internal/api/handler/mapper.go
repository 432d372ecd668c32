package handler

import (
	"github.com/coursehub/storefront/internal/core/access"
	"github.com/coursehub/storefront/internal/core/domain"
	"github.com/coursehub/storefront/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Phone:         u.Phone,
		IsAdminUser:   u.IsAdminUser,
		IsStaffMember: u.IsStaffMember,
		UserType:      u.UserType,
		CreatedAt:     u.CreatedAt.UTC(),
	}
}

// toAccessResponse describes u, or the customer profile when u is nil.
func toAccessResponse(u *domain.User) accessResponse {
	p := access.Describe(u)
	return accessResponse{
		Role:        p.Role,
		DisplayName: p.DisplayName,
		Color:       p.Color,
		Icon:        p.Icon,
		Permissions: p.Permissions,
	}
}

func toMeResponse(u *domain.User) meResponse {
	resp := meResponse{Access: toAccessResponse(u)}
	if u != nil {
		ur := toUserResponse(u)
		resp.User = &ur
	}
	return resp
}

func toUserWithAccessResponse(u *domain.User) userWithAccessResponse {
	return userWithAccessResponse{User: toUserResponse(u), Access: toAccessResponse(u)}
}

func toListUsersResponse(r *ports.ListUsersResult) listUsersResponse {
	items := make([]adminUserResponse, len(r.Items))
	for i, u := range r.Items {
		items[i] = adminUserResponse{userResponse: toUserResponse(u), Role: access.GetRole(u)}
	}
	return listUsersResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toReferralCodeResponse(r *domain.ReferralCode) referralCodeResponse {
	return referralCodeResponse{
		Code:            r.Code,
		OwnerID:         r.OwnerID,
		DiscountPercent: r.DiscountPercent,
		Visits:          r.Visits,
		Active:          r.Active,
		CreatedAt:       r.CreatedAt.UTC(),
		Links: referralLinks{
			Track: "/v1/referrals/" + r.Code,
		},
	}
}

func toListReferralCodesResponse(codes []*domain.ReferralCode) listReferralCodesResponse {
	items := make([]referralCodeResponse, len(codes))
	for i, r := range codes {
		items[i] = toReferralCodeResponse(r)
	}
	return listReferralCodesResponse{Data: items}
}
