// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-gated-site handlers.
//
// All Msg* constants are the human-readable texts shown to users as flash
// messages. Keeping them in one place keeps the wording consistent between
// handlers and tests.
package app

// Signup outcomes.
const (
	// MsgFieldsRequired is shown when any signup field is empty.
	MsgFieldsRequired = "All fields are required."

	MsgInvalidEmail = "Enter a valid email address."

	MsgUsernameTaken = "Username already taken."

	MsgEmailTaken = "Email already registered."

	// MsgPasswordTooShort is shown for passwords shorter than six characters.
	MsgPasswordTooShort = "Password must be at least 6 characters."

	// MsgPasswordTooLong is shown for passwords bcrypt would truncate.
	MsgPasswordTooLong = "Password must be at most 72 bytes."

	MsgPasswordsMismatch = "Passwords do not match."

	MsgSignupSuccessful = "Signup successful! Please login."
)

// Login and logout outcomes.
const (
	MsgLoginFieldsRequired = "Both username and password are required."

	// MsgInvalidCredentials is shown for an unknown user and a wrong
	// password alike.
	MsgInvalidCredentials = "Invalid credentials."

	MsgLoggedOut = "You have successfully logged out."
)

const (
	// MsgSomethingWentWrong is shown when an unexpected server-side failure
	// occurs that the user cannot resolve.
	MsgSomethingWentWrong = "Something went wrong. Please try again."

	// MsgInvalidCSRFToken is the body of the 403 response sent for a form
	// submitted without a valid CSRF token.
	MsgInvalidCSRFToken = "invalid CSRF token"
)
