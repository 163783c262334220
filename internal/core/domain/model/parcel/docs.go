// Package parcel contains the Parcel aggregate and its delivery state machine.
//
// A parcel is booked by a customer (Created, Unpaid), paid once, assigned to
// a rider by an administrator, collected, and finally delivered or abandoned.
// The transition table lives on DeliveryStatus; Parcel applies the side
// effects of each edge (timestamps, rider earning, assignment clean-up).
//
// Rider earning is fixed when the parcel becomes Completed:
//
//	rider_earn = round_half_up(totalCost × rate, 2)
//	rate = 0.8 when senderDistrict equals receiverDistrict, otherwise 0.3
package parcel
