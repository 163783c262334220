package http

import (
	"time"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/domain/model/withdrawal"
)

// Error is the body of every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Name string `json:"name" validate:"omitempty,max=120"`
}

type LoginResponse struct {
	IsNewUser bool         `json:"isNewUser"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type NewParcelRequest struct {
	Title            string  `json:"title"            validate:"required,max=200"`
	SenderName       string  `json:"senderName"       validate:"required,max=120"`
	SenderDistrict   string  `json:"senderDistrict"   validate:"required,max=80"`
	ReceiverName     string  `json:"receiverName"     validate:"required,max=120"`
	ReceiverDistrict string  `json:"receiverDistrict" validate:"required,max=80"`
	TotalCost        float64 `json:"totalCost"        validate:"gt=0"`
}

type ParcelResponse struct {
	ID                 string     `json:"id"`
	TrackingID         string     `json:"trackingId"`
	Title              string     `json:"title"`
	CreatedBy          string     `json:"created_by"`
	SenderName         string     `json:"senderName"`
	SenderDistrict     string     `json:"senderDistrict"`
	ReceiverName       string     `json:"receiverName"`
	ReceiverDistrict   string     `json:"receiverDistrict"`
	TotalCost          float64    `json:"totalCost"`
	PaymentStatus      string     `json:"paymentStatus"`
	DeliveryStatus     string     `json:"deliveryStatus"`
	AssignedRiderID    *string    `json:"assignedRiderId,omitempty"`
	AssignedRiderEmail *string    `json:"assignedRiderEmail,omitempty"`
	AssignedAt         *time.Time `json:"assignedAt,omitempty"`
	PickedAt           *time.Time `json:"pickedAt,omitempty"`
	DeliveredAt        *time.Time `json:"deliveredAt,omitempty"`
	RiderEarn          *float64   `json:"rider_earn,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type AssignRiderRequest struct {
	RiderID    string `json:"riderId"    validate:"required"`
	RiderEmail string `json:"riderEmail" validate:"required,email"`
}

type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ModifiedResponse struct {
	ModifiedCount int `json:"modifiedCount"`
}

type PaymentRequest struct {
	ParcelID      string  `json:"parcelId"      validate:"required,uuid"`
	Amount        float64 `json:"amount"        validate:"gt=0"`
	TransactionID string  `json:"transactionId" validate:"omitempty,max=255"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId,omitempty"`
	PaidAt        time.Time `json:"paid_at"`
}

type TrackingRequest struct {
	TrackingID string         `json:"trackingId" validate:"required,max=64"`
	Status     string         `json:"status"     validate:"required,max=64"`
	Details    map[string]any `json:"details"`
}

type TrackingEventResponse struct {
	TrackingID string         `json:"trackingId"`
	Status     string         `json:"status"`
	Details    map[string]any `json:"details"`
	UpdatedBy  string         `json:"updated_by"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type RiderApplicationRequest struct {
	Name     string `json:"name"     validate:"required,max=120"`
	District string `json:"district" validate:"required,max=80"`
	Phone    string `json:"phone"    validate:"omitempty,max=32"`
}

type RiderResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	District   string    `json:"district"`
	Phone      string    `json:"phone,omitempty"`
	Status     string    `json:"status"`
	WorkStatus string    `json:"work_status"`
	CreatedAt  time.Time `json:"created_at"`
}

type CashoutRequest struct {
	Amount float64 `json:"amount" validate:"gt=0"`
}

type WithdrawalResponse struct {
	ID         string    `json:"id"`
	RiderEmail string    `json:"riderEmail"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TotalResponse struct {
	Total float64 `json:"total"`
}

type ParcelStatsResponse struct {
	Total            int64            `json:"total"`
	ByDeliveryStatus map[string]int64 `json:"byDeliveryStatus"`
	ByPaymentStatus  map[string]int64 `json:"byPaymentStatus"`
	Revenue          float64          `json:"revenue"`
	RiderEarnings    float64          `json:"riderEarnings"`
	Margin           float64          `json:"margin"`
}

type AdminStatsResponse struct {
	Parcels        ParcelStatsResponse `json:"parcels"`
	RidersByStatus map[string]int64    `json:"ridersByStatus"`
	UsersByRole    map[string]int64    `json:"usersByRole"`
	TotalWithdrawn float64             `json:"totalWithdrawn"`
}

type RiderStatsResponse struct {
	Parcels          ParcelStatsResponse `json:"parcels"`
	TotalEarned      float64             `json:"totalEarned"`
	TotalWithdrawn   float64             `json:"totalWithdrawn"`
	AvailableBalance float64             `json:"availableBalance"`
}

type HealthDependency struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string             `json:"status"`
	Deps   []HealthDependency `json:"deps"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID().String(),
		Email:       u.Email().String(),
		Name:        u.Name(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}

func toParcelResponse(p *parcel.Parcel) ParcelResponse {
	d := p.Details()
	resp := ParcelResponse{
		ID:               p.ID().String(),
		TrackingID:       p.TrackingID(),
		Title:            d.Title,
		CreatedBy:        p.CreatedBy().String(),
		SenderName:       d.SenderName,
		SenderDistrict:   d.SenderDistrict,
		ReceiverName:     d.ReceiverName,
		ReceiverDistrict: d.ReceiverDistrict,
		TotalCost:        p.TotalCost().Float64(),
		PaymentStatus:    p.PaymentStatus().String(),
		DeliveryStatus:   p.DeliveryStatus().String(),
		PickedAt:         p.PickedAt(),
		DeliveredAt:      p.DeliveredAt(),
		RiderEarn:        moneyPtr(p.RiderEarn()),
		CreatedAt:        p.CreatedAt(),
	}
	if a := p.Assignment(); a != nil {
		id, email, at := a.RiderID.String(), a.RiderEmail.String(), a.AssignedAt
		resp.AssignedRiderID = &id
		resp.AssignedRiderEmail = &email
		resp.AssignedAt = &at
	}
	return resp
}

func toParcelViewResponse(v queries.ParcelView) ParcelResponse {
	resp := ParcelResponse{
		ID:                 v.ID.String(),
		TrackingID:         v.TrackingID,
		Title:              v.Title,
		CreatedBy:          v.CreatedBy,
		SenderName:         v.SenderName,
		SenderDistrict:     v.SenderDistrict,
		ReceiverName:       v.ReceiverName,
		ReceiverDistrict:   v.ReceiverDistrict,
		TotalCost:          v.TotalCost.Float64(),
		PaymentStatus:      v.PaymentStatus,
		DeliveryStatus:     v.DeliveryStatus,
		AssignedRiderEmail: v.AssignedRiderEmail,
		AssignedAt:         v.AssignedAt,
		PickedAt:           v.PickedAt,
		DeliveredAt:        v.DeliveredAt,
		RiderEarn:          moneyPtr(v.RiderEarn),
		CreatedAt:          v.CreatedAt,
	}
	if v.AssignedRiderID != nil {
		id := v.AssignedRiderID.String()
		resp.AssignedRiderID = &id
	}
	return resp
}

func toParcelViewResponses(views []queries.ParcelView) []ParcelResponse {
	resp := make([]ParcelResponse, len(views))
	for i, v := range views {
		resp[i] = toParcelViewResponse(v)
	}
	return resp
}

func toPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID().String(),
		ParcelID:      p.ParcelID().String(),
		Email:         p.Email().String(),
		Amount:        p.Amount().Float64(),
		TransactionID: p.TransactionID(),
		PaidAt:        p.PaidAt(),
	}
}

func toPaymentViewResponses(views []queries.PaymentView) []PaymentResponse {
	resp := make([]PaymentResponse, len(views))
	for i, v := range views {
		resp[i] = PaymentResponse{
			ID:            v.ID.String(),
			ParcelID:      v.ParcelID.String(),
			Email:         v.Email,
			Amount:        v.Amount.Float64(),
			TransactionID: v.TransactionID,
			PaidAt:        v.PaidAt,
		}
	}
	return resp
}

func toTrackingResponses(views []queries.TrackingEventView) []TrackingEventResponse {
	resp := make([]TrackingEventResponse, len(views))
	for i, v := range views {
		resp[i] = TrackingEventResponse(v)
	}
	return resp
}

func toRiderResponse(r *rider.Rider) RiderResponse {
	p := r.Profile()
	return RiderResponse{
		ID:         r.ID().String(),
		Email:      r.Email().String(),
		Name:       p.Name,
		District:   p.District,
		Phone:      p.Phone,
		Status:     r.Status().String(),
		WorkStatus: r.WorkStatus().String(),
		CreatedAt:  r.CreatedAt(),
	}
}

func toRiderViewResponses(views []queries.RiderView) []RiderResponse {
	resp := make([]RiderResponse, len(views))
	for i, v := range views {
		resp[i] = RiderResponse{
			ID:         v.ID.String(),
			Email:      v.Email,
			Name:       v.Name,
			District:   v.District,
			Phone:      v.Phone,
			Status:     v.Status,
			WorkStatus: v.WorkStatus,
			CreatedAt:  v.CreatedAt,
		}
	}
	return resp
}

func toWithdrawalResponse(w *withdrawal.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		ID:         w.ID().String(),
		RiderEmail: w.RiderEmail().String(),
		Amount:     w.Amount().Float64(),
		CreatedAt:  w.CreatedAt(),
	}
}

func toWithdrawalViewResponses(email string, views []queries.WithdrawalView) []WithdrawalResponse {
	resp := make([]WithdrawalResponse, len(views))
	for i, v := range views {
		resp[i] = WithdrawalResponse{
			ID:         v.ID.String(),
			RiderEmail: email,
			Amount:     v.Amount.Float64(),
			CreatedAt:  v.CreatedAt,
		}
	}
	return resp
}

func toParcelStatsResponse(s queries.ParcelStats) ParcelStatsResponse {
	return ParcelStatsResponse{
		Total:            s.Total,
		ByDeliveryStatus: s.ByDeliveryStatus,
		ByPaymentStatus:  s.ByPaymentStatus,
		Revenue:          s.Revenue.InexactFloat64(),
		RiderEarnings:    s.RiderEarnings.InexactFloat64(),
		Margin:           s.Margin.InexactFloat64(),
	}
}

func toAdminStatsResponse(s queries.AdminStats) AdminStatsResponse {
	return AdminStatsResponse{
		Parcels:        toParcelStatsResponse(s.Parcels),
		RidersByStatus: s.RidersByStatus,
		UsersByRole:    s.UsersByRole,
		TotalWithdrawn: s.TotalWithdrawn.InexactFloat64(),
	}
}

func toRiderStatsResponse(s queries.RiderStats) RiderStatsResponse {
	return RiderStatsResponse{
		Parcels:          toParcelStatsResponse(s.Parcels),
		TotalEarned:      s.TotalEarned.InexactFloat64(),
		TotalWithdrawn:   s.TotalWithdrawn.InexactFloat64(),
		AvailableBalance: s.AvailableBalance.InexactFloat64(),
	}
}

func moneyPtr(m *kernel.Money) *float64 {
	if m == nil {
		return nil
	}
	f := m.Float64()
	return &f
}
