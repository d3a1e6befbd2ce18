package types

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdjustPortionsRequest asks for a portion-adjusted suggestion for a recipe.
type AdjustPortionsRequest struct {
	Servings int  `json:"servings" binding:"required,min=1"`
	UseLLM   bool `json:"use_llm"`
}
