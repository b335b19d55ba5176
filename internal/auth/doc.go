// Package auth holds password hashing for user accounts and the HTTP
// security middleware.
//
// Passwords are stored as bcrypt hashes. ValidatePassword applies the
// length rules for passwords people choose; HashPassword only enforces
// bcrypt's own limits so the bootstrap admin can be created with its
// fixed password.
package auth
