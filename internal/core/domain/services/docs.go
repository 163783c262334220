// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - AssignmentPolicy: links an active, idle rider to a created parcel
//   - RoleForRiderStatus / ApplyRoleCascade: keep a user's role in step with
//     the status of the rider application carrying the same e-mail
package services
