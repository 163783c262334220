package queries_test

import (
	"context"
	"fmt"
	"time"

	"parcelhub/internal/adapters/out/postgres"
	"parcelhub/internal/adapters/out/postgres/pgtest"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/parcel"
	"parcelhub/internal/core/domain/model/payment"
	"parcelhub/internal/core/domain/model/rider"
	"parcelhub/internal/core/domain/model/tracking"
	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/core/domain/model/withdrawal"
	"parcelhub/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	adminEmail = "admin@example.com"
	riderEmail = "rider@example.com"
	buyerEmail = "buyer@example.com"
	otherEmail = "other@example.com"
)

// storeSuite gives every test a fresh in-memory database and seeding helpers.
type storeSuite struct {
	suite.Suite
	db       *gorm.DB
	uow      ports.UnitOfWork
	base     time.Time
	sequence int
}

func (s *storeSuite) SetupTest() {
	s.db = pgtest.NewSQLite(s.T())
	s.uow = postgres.NewGormUnitOfWorkFactory(s.db, nil).Create()
	s.base = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	s.sequence = 0
}

func (s *storeSuite) ctx() context.Context {
	return s.T().Context()
}

func (s *storeSuite) at(minutes int) time.Time {
	return s.base.Add(time.Duration(minutes) * time.Minute)
}

func (s *storeSuite) seedRider(email, name string, status rider.Status, minutes int) *rider.Rider {
	r, err := rider.RestoreRider(kernel.NewUUID(), kernel.MustEmail(email),
		rider.Profile{Name: name, District: "Dhaka", Phone: "01700000000"}, status, rider.Idle, s.at(minutes))
	s.Require().NoError(err)
	s.Require().NoError(s.uow.RiderRepository().Add(s.ctx(), r))
	return r
}

func (s *storeSuite) seedUser(email string, role user.Role) {
	u, err := user.NewUser(kernel.NewUUID(), kernel.MustEmail(email), "Someone", role, s.base)
	s.Require().NoError(err)
	s.Require().NoError(s.uow.UserRepository().Add(s.ctx(), u))
}

// seedParcel stores a parcel driven through the real state machine up to target.
func (s *storeSuite) seedParcel(
	createdBy, senderDistrict, receiverDistrict, cost string,
	paid bool,
	holder *rider.Rider,
	target parcel.DeliveryStatus,
	minutes int,
) *parcel.Parcel {
	s.sequence++
	created := s.at(minutes)
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		fmt.Sprintf("17900000000000%05d", s.sequence),
		kernel.MustEmail(createdBy),
		parcel.Details{
			Title:            "Parcel",
			SenderName:       "Sender",
			SenderDistrict:   senderDistrict,
			ReceiverName:     "Receiver",
			ReceiverDistrict: receiverDistrict,
		},
		kernel.MustMoney(cost),
		created,
	)
	s.Require().NoError(err)

	if paid {
		s.Require().NoError(p.MarkPaid(kernel.MustMoney(cost)))
	}
	if target != parcel.Created {
		s.Require().NoError(p.AssignRider(holder.ID(), holder.Email(), created.Add(time.Second)))
	}
	switch target {
	case parcel.InTransit:
		s.Require().NoError(p.Advance(parcel.InTransit, created.Add(2*time.Second)))
	case parcel.Completed:
		s.Require().NoError(p.Advance(parcel.InTransit, created.Add(2*time.Second)))
		s.Require().NoError(p.Advance(parcel.Completed, created.Add(3*time.Second)))
	case parcel.NotCollected:
		s.Require().NoError(p.Advance(parcel.NotCollected, created.Add(2*time.Second)))
	default:
	}

	s.Require().NoError(s.uow.ParcelRepository().Add(s.ctx(), p))
	return p
}

func (s *storeSuite) seedPayment(p *parcel.Parcel, minutes int) *payment.Payment {
	record, err := payment.NewPayment(kernel.NewUUID(), p.ID(), p.CreatedBy(), p.TotalCost(),
		fmt.Sprintf("pi_%d", minutes), s.at(minutes))
	s.Require().NoError(err)
	s.Require().NoError(s.uow.PaymentRepository().Add(s.ctx(), record))
	return record
}

func (s *storeSuite) seedEvent(trackingID, status string, minutes int) {
	event, err := tracking.NewEvent(kernel.NewUUID(), trackingID, status,
		map[string]any{"step": minutes}, kernel.MustEmail(adminEmail), s.at(minutes))
	s.Require().NoError(err)
	s.Require().NoError(s.uow.TrackingRepository().Add(s.ctx(), event))
}

func (s *storeSuite) seedWithdrawal(email, amount string, minutes int) {
	record, err := withdrawal.NewWithdrawal(kernel.NewUUID(), kernel.MustEmail(email), kernel.MustMoney(amount), s.at(minutes))
	s.Require().NoError(err)
	s.Require().NoError(s.uow.WithdrawalRepository().Add(s.ctx(), record))
}
