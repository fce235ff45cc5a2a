package addressrepo_test

import (
	"context"
	"testing"
	"time"

	"swiftwash/internal/adapters/out/postgres/addressrepo"
	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// AddressRepositoryIntegrationTestSuite provides integration tests for
// the address lookup using PostgreSQL containers.
type AddressRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *addressrepo.GormAddressRepository
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&addressrepo.AddressDTO{}))
}

func (suite *AddressRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE addresses").Error)
	suite.repository = addressrepo.NewGormAddressRepository(suite.db)
}

func (suite *AddressRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *AddressRepositoryIntegrationTestSuite) TestPrimaryAddress_ReturnsFirstRegistered() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	suite.insertAddress(userID, "440010", "Nagpur", nil, nil, time.Now().Add(-time.Hour))
	suite.insertAddress(userID, "411038", "Pune", nil, nil, time.Now())

	address, err := suite.repository.PrimaryAddress(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal("440010", address.PostalCode)
	suite.Equal("Nagpur", address.CityName)
	suite.Nil(address.Point)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestPrimaryAddress_MapsCoordinates() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	lat, lng := 21.1458, 79.0882
	suite.insertAddress(userID, "", "", &lat, &lng, time.Now())

	address, err := suite.repository.PrimaryAddress(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().NotNil(address.Point)
	suite.InDelta(lat, address.Point.Latitude(), 1e-9)
	suite.InDelta(lng, address.Point.Longitude(), 1e-9)
	suite.True(address.HasUsableInput())
}

func (suite *AddressRepositoryIntegrationTestSuite) TestPrimaryAddress_PartialCoordinatesIgnored() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	lat := 21.1458
	suite.insertAddress(userID, "440010", "Nagpur", &lat, nil, time.Now())

	address, err := suite.repository.PrimaryAddress(ctx, userID)
	suite.Require().NoError(err)
	suite.Nil(address.Point)
	suite.Equal("440010", address.PostalCode)
}

func (suite *AddressRepositoryIntegrationTestSuite) TestPrimaryAddress_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.PrimaryAddress(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AddressRepositoryIntegrationTestSuite) insertAddress(
	userID kernel.UUID,
	postalCode string,
	cityName string,
	latitude *float64,
	longitude *float64,
	createdAt time.Time,
) {
	dto := addressrepo.AddressDTO{
		ID:         uuid.New(),
		UserID:     userID.Bytes(),
		PostalCode: postalCode,
		CityName:   cityName,
		Latitude:   latitude,
		Longitude:  longitude,
		CreatedAt:  createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func TestAddressRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	suite.Run(t, new(AddressRepositoryIntegrationTestSuite))
}
