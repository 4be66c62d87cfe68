package response

import (
	"event-booking/internal/data/entity"
	"time"
)

type EnrollmentResponse struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	CPF       string    `json:"cpf"`
	Birthday  string    `json:"birthday"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func EnrollmentToResponse(enrollment *entity.Enrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:        enrollment.ID,
		UserID:    enrollment.UserID,
		Name:      enrollment.Name,
		CPF:       enrollment.CPF,
		Birthday:  enrollment.Birthday.Format("2006-01-02"),
		Phone:     enrollment.Phone,
		CreatedAt: enrollment.CreatedAt,
		UpdatedAt: enrollment.UpdatedAt,
	}
}
