package dto

// RegisterReq represents the request body for the /register endpoint.
// Field validation (presence, password length, email shape) is performed by the
// usecase so that each rule surfaces as an explicit error kind.
type RegisterReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}
