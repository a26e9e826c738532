package models

import "time"

type Enrollment struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CPF       string    `json:"cpf" db:"cpf"`
	Birthday  time.Time `json:"birthday" db:"birthday"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Address   *Address  `json:"address,omitempty" db:"-"`
}

type Address struct {
	ID            int    `json:"id" db:"id"`
	EnrollmentID  int    `json:"enrollmentId" db:"enrollment_id"`
	CEP           string `json:"cep" db:"cep"`
	Street        string `json:"street" db:"street"`
	City          string `json:"city" db:"city"`
	State         string `json:"state" db:"state"`
	Number        string `json:"number" db:"number"`
	Neighborhood  string `json:"neighborhood" db:"neighborhood"`
	AddressDetail string `json:"addressDetail" db:"address_detail"`
}
