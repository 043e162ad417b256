package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"autoloco/internal/domain"
)

type demoAccount struct {
	ID       int64
	Role     string
	FullName string
	Email    string
}

var demoAccounts = []demoAccount{
	{ID: 1, Role: "admin", FullName: "Admin AUTOLOCO", Email: "admin@autoloco.cm"},
	{ID: 2, Role: "Propriétaire", FullName: "Paul Mbarga", Email: "owner@autoloco.cm"},
	{ID: 3, Role: "LOCATAIRE", FullName: "Aïcha Njoya", Email: "renter@autoloco.cm"},
}

var (
	cities = []string{"Douala", "Yaoundé", "Bafoussam", "Kribi", "Garoua"}
	models = [][2]string{
		{"Toyota", "Corolla"}, {"Toyota", "Land Cruiser"}, {"Hyundai", "Tucson"},
		{"Kia", "Picanto"}, {"Mercedes", "Classe C"}, {"Suzuki", "Swift"},
	}

	// the same states spelled the way the various producers write them
	bookingStatuses = []string{
		"", "confirmée", "Confirmed", "En attente", "pending", "Annulée", "cancelled",
		"Litige", "terminée", "En cours", "refusée", "VALIDÉE",
	}
	paymentStatuses = []string{"", "Payé", "paid", "En attente", "Remboursé", "impayé", "success"}
	vehicleStatuses = []string{"", "disponible", "Indisponible", "En maintenance"}

	ticketSubjects = []string{
		"Remboursement non reçu", "Problème de paiement", "Annuler ma réservation",
		"Véhicule en panne", "Changer mon mot de passe", "Question générale",
	}
	ticketStatuses   = []string{"", "ouvert", "En cours", "Résolu", "fermé"}
	ticketPriorities = []string{"", "basse", "normale", "Urgente", "élevée"}
)

const (
	extraOwners  = 4
	extraRenters = 12
	vehicleCount = 18
	ticketCount  = 15
)

type seeder struct {
	db   *gorm.DB
	rnd  *rand.Rand
	now  time.Time
	log  *zap.Logger
	size int
}

func (s *seeder) run() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		s.log.Info("cleaning old data")
		for _, table := range []string{"transactions", "support_tickets", "bookings", "vehicles", "users"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clean %s: %w", table, err)
			}
		}

		owners, renters, err := s.users(tx)
		if err != nil {
			return err
		}
		vehicles, err := s.vehicles(tx, owners)
		if err != nil {
			return err
		}
		if err := s.bookings(tx, vehicles, renters); err != nil {
			return err
		}
		return s.tickets(tx, append(owners, renters...))
	})
}

func (s *seeder) users(tx *gorm.DB) (owners, renters []int64, err error) {
	s.log.Info("creating users")
	var users []domain.User
	for _, acc := range demoAccounts {
		users = append(users, domain.User{
			ID: acc.ID, FullName: acc.FullName, Email: acc.Email,
			UserType: ptr(acc.Role), Status: ptr("actif"), City: "Douala",
			CreatedAt: s.now.AddDate(-1, 0, 0),
		})
	}
	owners = []int64{2}
	renters = []int64{3}

	nextID := int64(len(demoAccounts) + 1)
	for i := 0; i < extraOwners+extraRenters; i++ {
		role, list := "owner", &owners
		if i >= extraOwners {
			role, list = "locataire", &renters
		}
		statuses := []string{"", "actif", "vérifié", "en attente", "bloqué"}
		users = append(users, domain.User{
			ID:        nextID,
			FullName:  fmt.Sprintf("Utilisateur %d", nextID),
			Email:     fmt.Sprintf("user%d@autoloco.cm", nextID),
			UserType:  ptr(role),
			Status:    ptr(pick(s.rnd, statuses)),
			City:      pick(s.rnd, cities),
			CreatedAt: s.pastTime(365),
		})
		*list = append(*list, nextID)
		nextID++
	}

	err = tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "email", "user_type", "status", "city"}),
	}).Create(&users).Error
	if err != nil {
		return nil, nil, fmt.Errorf("create users: %w", err)
	}
	return owners, renters, nil
}

func (s *seeder) vehicles(tx *gorm.DB, owners []int64) ([]domain.Vehicle, error) {
	s.log.Info("creating vehicles")
	out := make([]domain.Vehicle, 0, vehicleCount)
	for i := 1; i <= vehicleCount; i++ {
		m := pick(s.rnd, models)
		out = append(out, domain.Vehicle{
			ID:          int64(i),
			OwnerID:     owners[(i-1)%len(owners)],
			Brand:       m[0],
			Model:       m[1],
			City:        pick(s.rnd, cities),
			PricePerDay: float64(15000 + 2500*s.rnd.IntN(16)),
			Status:      ptr(pick(s.rnd, vehicleStatuses)),
			CreatedAt:   s.pastTime(400),
		})
	}
	if err := tx.Create(&out).Error; err != nil {
		return nil, fmt.Errorf("create vehicles: %w", err)
	}
	return out, nil
}

func (s *seeder) bookings(tx *gorm.DB, vehicles []domain.Vehicle, renters []int64) error {
	s.log.Info("creating bookings", zap.Int("count", s.size))
	bookings := make([]domain.Booking, 0, s.size)
	var txs []domain.Transaction

	for i := 1; i <= s.size; i++ {
		v := vehicles[s.rnd.IntN(len(vehicles))]
		start := s.now.AddDate(0, 0, s.rnd.IntN(300)-270).Truncate(24 * time.Hour)
		days := 1 + s.rnd.IntN(10)
		total := v.PricePerDay * float64(days)

		b := domain.Booking{
			ID:            int64(i),
			VehicleID:     v.ID,
			RenterID:      renters[s.rnd.IntN(len(renters))],
			OwnerID:       v.OwnerID,
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, days),
			Status:        ptr(pick(s.rnd, bookingStatuses)),
			PaymentStatus: ptr(pick(s.rnd, paymentStatuses)),
			TotalAmount:   total,
			CreatedAt:     start.AddDate(0, 0, -(1 + s.rnd.IntN(14))),
		}
		bookings = append(bookings, b)

		// roughly two thirds of bookings went through the payment pipeline
		if s.rnd.IntN(3) == 0 {
			continue
		}
		t := domain.Transaction{
			ID:        int64(len(txs) + 1),
			BookingID: b.ID,
			Amount:    total,
			Status:    b.PaymentStatus,
			CreatedAt: b.CreatedAt.Add(time.Hour),
		}
		if s.rnd.IntN(2) == 0 {
			fee := math.Round(total * 0.1)
			net := total - fee
			t.CommissionFee, t.NetAmount = &fee, &net
		}
		txs = append(txs, t)
	}

	if err := tx.CreateInBatches(&bookings, 200).Error; err != nil {
		return fmt.Errorf("create bookings: %w", err)
	}
	if len(txs) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&txs, 200).Error; err != nil {
		return fmt.Errorf("create transactions: %w", err)
	}
	return nil
}

func (s *seeder) tickets(tx *gorm.DB, users []int64) error {
	s.log.Info("creating support tickets")
	out := make([]domain.SupportTicket, 0, ticketCount)
	for i := 1; i <= ticketCount; i++ {
		t := domain.SupportTicket{
			ID:        int64(i),
			UserID:    users[s.rnd.IntN(len(users))],
			Subject:   pick(s.rnd, ticketSubjects),
			Status:    ptr(pick(s.rnd, ticketStatuses)),
			Priority:  ptr(pick(s.rnd, ticketPriorities)),
			CreatedAt: s.pastTime(90),
		}
		// older tickets were filed without a category
		if i%2 == 0 {
			t.Category = ptr("paiement")
		}
		out = append(out, t)
	}
	if err := tx.Create(&out).Error; err != nil {
		return fmt.Errorf("create tickets: %w", err)
	}
	return nil
}

func (s *seeder) pastTime(maxDays int) time.Time {
	return s.now.Add(-time.Duration(s.rnd.IntN(maxDays*24)) * time.Hour)
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
