package dto

type LoginInput struct {
	Email string
	Role  string
}

type LoginOutput struct {
	Token     string
	ProfileID string
	Name      string
	Email     string
	Role      string
	IsPremium bool
}
