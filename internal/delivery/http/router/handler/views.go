package handler

import (
	"time"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the API shape of a user account. The credential hash never
// leaves the domain layer.
type userView struct {
	ID          uuid.UUID           `json:"id"`
	Email       string              `json:"email"`
	Name        string              `json:"name"`
	IsActive    bool                `json:"is_active"`
	ProfileKind entity.ProfileKind  `json:"profile_kind"`
	Customer    *customerView       `json:"customer_profile,omitempty"`
	Staff       *staffView          `json:"staff_profile,omitempty"`
	Memberships []*membershipView   `json:"business_memberships,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type customerView struct {
	ID          uuid.UUID                  `json:"id"`
	CPF         *string                    `json:"cpf,omitempty"`
	BirthDate   *time.Time                 `json:"birth_date,omitempty"`
	Status      entity.ProfileStatus       `json:"status"`
	AccessLevel entity.CustomerAccessLevel `json:"access_level"`
}

type staffView struct {
	ID                uuid.UUID               `json:"id"`
	Status            entity.ProfileStatus    `json:"status"`
	AccessLevel       entity.StaffAccessLevel `json:"access_level"`
	SystemPermissions []string                `json:"system_permissions,omitempty"`
}

type membershipView struct {
	ID          uuid.UUID                  `json:"id"`
	BusinessID  uuid.UUID                  `json:"business_id"`
	Status      entity.ProfileStatus       `json:"status"`
	AccessLevel entity.BusinessAccessLevel `json:"access_level"`
	Permissions []string                   `json:"permissions,omitempty"`
}

func newUserView(u *entity.User) *userView {
	if u == nil {
		return nil
	}

	view := &userView{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		IsActive:    u.Active,
		ProfileKind: u.ProfileKind,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}

	if u.CustomerProfile != nil {
		view.Customer = &customerView{
			ID:          u.CustomerProfile.ID,
			CPF:         u.CustomerProfile.CPF,
			BirthDate:   u.CustomerProfile.BirthDate,
			Status:      u.CustomerProfile.Status,
			AccessLevel: u.CustomerProfile.AccessLevel,
		}
	}

	if u.StaffProfile != nil {
		view.Staff = &staffView{
			ID:                u.StaffProfile.ID,
			Status:            u.StaffProfile.Status,
			AccessLevel:       u.StaffProfile.AccessLevel,
			SystemPermissions: u.StaffProfile.SystemPermissions,
		}
	}

	for _, m := range u.ActiveMemberships() {
		view.Memberships = append(view.Memberships, &membershipView{
			ID:          m.ID,
			BusinessID:  m.BusinessID,
			Status:      m.Status,
			AccessLevel: m.AccessLevel,
			Permissions: m.Permissions,
		})
	}

	return view
}

func newUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, u := range users {
		views = append(views, newUserView(u))
	}

	return views
}

// businessView is the API shape of a business.
type businessView struct {
	ID          uuid.UUID             `json:"id"`
	Name        string                `json:"name"`
	Slug        string                `json:"slug"`
	CNPJ        string                `json:"cnpj"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone,omitempty"`
	Description string                `json:"description,omitempty"`
	Status      entity.BusinessStatus `json:"status"`
	ApprovedAt  *time.Time            `json:"approved_at,omitempty"`
	Plan        *planView             `json:"plan,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type planView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	Price        float64   `json:"price"`
	BillingCycle string    `json:"billing_cycle"`
	Features     []string  `json:"features,omitempty"`
	MaxUsers     *int      `json:"max_users,omitempty"`
	MaxCustomers *int      `json:"max_customers,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsFeatured   bool      `json:"is_featured"`
	SortOrder    int       `json:"sort_order"`
}

type addressView struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"owner_id"`
	OwnerKind    entity.OwnerKind   `json:"owner_kind"`
	Type         entity.AddressType `json:"type"`
	Street       string             `json:"street"`
	Number       string             `json:"number"`
	Complement   string             `json:"complement,omitempty"`
	Neighborhood string             `json:"neighborhood"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	ZipCode      string             `json:"zip_code"`
	Country      string             `json:"country"`
	Latitude     *float64           `json:"latitude,omitempty"`
	Longitude    *float64           `json:"longitude,omitempty"`
	IsPrimary    bool               `json:"is_primary"`
}

func newBusinessView(b *entity.Business) *businessView {
	if b == nil {
		return nil
	}

	return &businessView{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		CNPJ:        b.FormattedCNPJ(),
		Email:       b.Email,
		Phone:       b.Phone,
		Description: b.Description,
		Status:      b.Status,
		ApprovedAt:  b.ApprovedAt,
		Plan:        newPlanView(b.PlatformPlan),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func newBusinessViews(businesses []*entity.Business) []*businessView {
	views := make([]*businessView, 0, len(businesses))
	for _, b := range businesses {
		views = append(views, newBusinessView(b))
	}

	return views
}

func newPlanView(p *entity.PlatformPlan) *planView {
	if p == nil {
		return nil
	}

	return &planView{
		ID:           p.ID,
		Name:         p.Name,
		Slug:         p.Slug,
		Description:  p.Description,
		Price:        p.Price,
		BillingCycle: p.BillingCycle,
		Features:     p.Features,
		MaxUsers:     p.MaxUsers,
		MaxCustomers: p.MaxCustomers,
		IsActive:     p.IsActive,
		IsFeatured:   p.IsFeatured,
		SortOrder:    p.SortOrder,
	}
}

func newPlanViews(plans []*entity.PlatformPlan) []*planView {
	views := make([]*planView, 0, len(plans))
	for _, p := range plans {
		views = append(views, newPlanView(p))
	}

	return views
}

func newAddressView(a *entity.Address) *addressView {
	if a == nil {
		return nil
	}

	return &addressView{
		ID:           a.ID,
		OwnerID:      a.OwnerID,
		OwnerKind:    a.OwnerKind,
		Type:         a.Type,
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
		Country:      a.Country,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		IsPrimary:    a.IsPrimary,
	}
}

func newAddressViews(addresses []*entity.Address) []*addressView {
	views := make([]*addressView, 0, len(addresses))
	for _, a := range addresses {
		views = append(views, newAddressView(a))
	}

	return views
}

func newCustomerView(p *entity.CustomerProfile) *customerView {
	if p == nil {
		return nil
	}

	return &customerView{
		ID:          p.ID,
		CPF:         p.CPF,
		BirthDate:   p.BirthDate,
		Status:      p.Status,
		AccessLevel: p.AccessLevel,
	}
}

func newCustomerViews(profiles []*entity.CustomerProfile) []*customerView {
	views := make([]*customerView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, newCustomerView(p))
	}

	return views
}

func newStaffView(p *entity.StaffUserProfile) *staffView {
	if p == nil {
		return nil
	}

	return &staffView{
		ID:                p.ID,
		Status:            p.Status,
		AccessLevel:       p.AccessLevel,
		SystemPermissions: p.SystemPermissions,
	}
}

func newStaffViews(profiles []*entity.StaffUserProfile) []*staffView {
	views := make([]*staffView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, newStaffView(p))
	}

	return views
}
