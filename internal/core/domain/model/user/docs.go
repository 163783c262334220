// Package user contains the User aggregate and its Role.
//
// A user's role is user, rider, or admin. The rider role is never chosen by
// the client: it follows the status of the rider application with the same
// e-mail (active gives rider, rejected or deactivated gives user).
package user
