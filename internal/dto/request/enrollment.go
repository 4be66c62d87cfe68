package request

type EnrollmentRequest struct {
	Name     string `json:"name" validate:"required,min=3,max=255"`
	CPF      string `json:"cpf" validate:"required,numeric,len=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
	Phone    string `json:"phone" validate:"required,min=10,max=20"`
}
