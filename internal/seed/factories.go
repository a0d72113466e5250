// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"travelmeetup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB. The seed
// makes generated data reproducible across runs.
func NewFactory(db *gorm.DB, seedValue int64) *Factory {
	gofakeit.Seed(seedValue)
	return &Factory{db: db, rand: rand.New(rand.NewSource(seedValue))}
}

// demoPasswordHash is shared across seeded users so seeding stays fast;
// bcrypt per user would dominate the run.
var demoPasswordHash = func() string {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}()

// BuildUser constructs an unsaved user with fake profile data.
func (f *Factory) BuildUser(n int) *models.User {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	username := fmt.Sprintf("%s%s%d", strings.ToLower(first), strings.ToLower(last), n)
	return &models.User{
		Email:        fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
		Username:     username,
		DisplayName:  first + " " + last,
		PasswordHash: demoPasswordHash,
		Bio:          gofakeit.Sentence(8),
		HomeCity:     gofakeit.City(),
		IsActive:     true,
	}
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser(n int) (*models.User, error) {
	user := f.BuildUser(n)
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildConnection constructs an unsaved connection for the pair, stored
// canonically (smaller id first).
func (f *Factory) BuildConnection(a, b *models.User, status models.ConnectionStatus) *models.Connection {
	u1, u2 := models.CanonicalPair(a.ID, b.ID)
	return &models.Connection{User1ID: u1, User2ID: u2, Status: status}
}

// CreateConnection persists a connection between the pair.
func (f *Factory) CreateConnection(a, b *models.User, status models.ConnectionStatus) (*models.Connection, error) {
	conn := f.BuildConnection(a, b, status)
	if err := f.db.Create(conn).Error; err != nil {
		return nil, err
	}
	return conn, nil
}

var purposes = []string{
	models.PurposeVacation,
	models.PurposeBusiness,
	models.PurposeVisiting,
	models.PurposeOther,
}

// BuildTravelPlan constructs an unsaved plan with a coherent date range.
func (f *Factory) BuildTravelPlan(owner *models.User) *models.TravelPlan {
	start := time.Now().AddDate(0, 0, f.rand.Intn(120)).Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 1+f.rand.Intn(14))
	return &models.TravelPlan{
		UserID:    owner.ID,
		City:      gofakeit.City(),
		Country:   gofakeit.Country(),
		StartDate: start,
		EndDate:   end,
		Purpose:   purposes[f.rand.Intn(len(purposes))],
		Notes:     gofakeit.Sentence(10),
		IsPublic:  f.rand.Intn(4) != 0,
	}
}

// CreateTravelPlan persists a generated plan for the owner.
func (f *Factory) CreateTravelPlan(owner *models.User) (*models.TravelPlan, error) {
	plan := f.BuildTravelPlan(owner)
	if err := f.db.Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// CreateConnectionRequestNotification persists the notification a pending
// connection would have produced.
func (f *Factory) CreateConnectionRequestNotification(recipient *models.User, from *models.User, conn *models.Connection) (*models.Notification, error) {
	n := &models.Notification{
		UserID:  recipient.ID,
		Type:    models.NotificationConnectionRequest,
		Title:   "New connection request",
		Message: fmt.Sprintf("%s wants to connect with you.", from.DisplayName),
	}
	n.SetRelatedEntity(models.EntityRef{Kind: models.EntityKindConnection, ID: conn.ID})
	if err := f.db.Create(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}
