package getexperience

import (
	"context"
	"errors"
	"testing"
	"time"

	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	"expwall/internal/core/domain/logging"
	"expwall/internal/core/domain/viewlog"
	"expwall/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	ExperienceID = experience.ID("0c6f1b6a-7a3d-4a2f-9b7e-5d2c1e8f4a90")
	Address      = "203.0.113.7"
)

var Now = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger      *logging.FakeLogger
	experiences *experience.FakeRepository
	viewLogs    *viewlog.FakeRepository
	service     services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.experiences = experience.NewFakeRepository()
	suite.experiences.Experiences = []experience.Experience{
		{
			ID:          ExperienceID,
			Content:     "the onboarding process was confusing and slow for new hires",
			Fingerprint: fingerprint.Fingerprint("fp::author"),
			Views:       0,
			CreatedAt:   Now.Add(-time.Hour),
		},
	}
	suite.viewLogs = viewlog.NewFakeRepository()
	suite.service = New(
		suite.logger,
		suite.experiences,
		suite.viewLogs,
		fingerprint.NewFakeFingerprinter(),
		func() time.Time { return Now },
	)
}

func TestGetExperienceService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestFirstViewIncrements() {
	result, err := suite.service.Run(context.Background(), Input{ID: ExperienceID, Address: Address})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(ExperienceID, result.Experience.ID)
	assert.Equal(uint64(1), result.Experience.Views)
}

func (suite *testSuite) TestRepeatViewsCountOnce() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := suite.service.Run(ctx, Input{ID: ExperienceID, Address: Address})
		suite.Require().Nil(err)
	}

	result, err := suite.service.Run(ctx, Input{ID: ExperienceID, Address: Address})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(uint64(1), result.Experience.Views)
}

func (suite *testSuite) TestDistinctViewersEachCount() {
	ctx := context.Background()
	_, err := suite.service.Run(ctx, Input{ID: ExperienceID, Address: Address})
	suite.Require().Nil(err)

	result, err := suite.service.Run(ctx, Input{ID: ExperienceID, Address: "198.51.100.23"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(uint64(2), result.Experience.Views)
}

func (suite *testSuite) TestUnknownViewersShareOneView() {
	ctx := context.Background()
	_, err := suite.service.Run(ctx, Input{ID: ExperienceID, Address: ""})
	suite.Require().Nil(err)

	result, err := suite.service.Run(ctx, Input{ID: ExperienceID, Address: ""})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(uint64(1), result.Experience.Views)
}

func (suite *testSuite) TestExperienceDoesNotExist() {
	_, err := suite.service.Run(context.Background(), Input{
		ID:      "a3a3a3a3-0000-0000-0000-000000000000",
		Address: Address,
	})

	suite.Require().ErrorIs(err, experience.ErrExperienceDoesNotExist)
}

func (suite *testSuite) TestConcurrentViewLogDegradesToFetch() {
	// The existence check passed but another request created the log first.
	suite.viewLogs.CreateError = viewlog.ErrViewAlreadyLogged

	result, err := suite.service.Run(context.Background(), Input{ID: ExperienceID, Address: Address})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(uint64(0), result.Experience.Views)
}

func (suite *testSuite) TestViewLogReadFailure() {
	storeErr := errors.New("connection reset")
	suite.viewLogs.GetError = storeErr

	_, err := suite.service.Run(context.Background(), Input{ID: ExperienceID, Address: Address})

	suite.Require().ErrorIs(err, storeErr)
}

func (suite *testSuite) TestIncrementFailure() {
	storeErr := errors.New("connection reset")
	suite.experiences.IncrementError = storeErr

	_, err := suite.service.Run(context.Background(), Input{ID: ExperienceID, Address: Address})

	suite.Require().ErrorIs(err, storeErr)
}
