package dto

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Specialty string `json:"specialty"`
	Image     string `json:"image"`
}
