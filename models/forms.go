package models

// SignupForm holds the untrusted fields submitted to the signup page.
type SignupForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm holds the untrusted fields submitted to the login page.
type LoginForm struct {
	Username string
	Password string
}
