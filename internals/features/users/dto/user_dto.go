package dto

import (
	userModel "absenku_backend/internals/features/users/model"
)

// CreateUserRequest — body pendaftaran user baru (sekali pakai per orang).
type CreateUserRequest struct {
	UserUID      string `json:"uid" validate:"required,min=3,max=30"`
	UserName     string `json:"name" validate:"required,min=2,max=100"`
	UserDivision string `json:"division" validate:"required,min=1,max=10"`
	UserYear     int    `json:"year" validate:"required,min=1,max=4"`
	UserBatch    string `json:"batch" validate:"required,min=1,max=10"`
	UserBranch   string `json:"branch" validate:"omitempty,max=30"`
	UserContact  string `json:"contact_id" validate:"required,min=1,max=30"`
	UserIsAdmin  bool   `json:"is_admin"`
}

func (r *CreateUserRequest) ToModel() *userModel.UserModel {
	branch := r.UserBranch
	if branch == "" {
		branch = "COMPS"
	}
	return &userModel.UserModel{
		UserUID:      r.UserUID,
		UserName:     r.UserName,
		UserDivision: r.UserDivision,
		UserYear:     r.UserYear,
		UserBatch:    r.UserBatch,
		UserBranch:   branch,
		UserContact:  r.UserContact,
		UserIsAdmin:  r.UserIsAdmin,
	}
}

// UserResponse — bentuk user di semua response JSON.
type UserResponse struct {
	UserID       string `json:"user_id"`
	UserUID      string `json:"uid"`
	UserName     string `json:"name"`
	UserDivision string `json:"division"`
	UserYear     int    `json:"year"`
	UserBatch    string `json:"batch"`
	UserBranch   string `json:"branch"`
	UserContact  string `json:"contact_id"`
	UserIsAdmin  bool   `json:"is_admin"`
}

func ToUserResponse(m *userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:       m.UserID.String(),
		UserUID:      m.UserUID,
		UserName:     m.UserName,
		UserDivision: m.UserDivision,
		UserYear:     m.UserYear,
		UserBatch:    m.UserBatch,
		UserBranch:   m.UserBranch,
		UserContact:  m.UserContact,
		UserIsAdmin:  m.UserIsAdmin,
	}
}
