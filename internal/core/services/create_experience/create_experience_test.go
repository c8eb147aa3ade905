package createexperience

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"expwall/internal/core/domain/antispam"
	c "expwall/internal/core/domain/common"
	"expwall/internal/core/domain/experience"
	"expwall/internal/core/domain/fingerprint"
	"expwall/internal/core/domain/logging"
	"expwall/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	Address = "203.0.113.7"
	NextID  = experience.ID("6a2f9015-2c0e-4f21-b3a1-2f3d6a6de111")
)

var (
	Now          = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	ValidContent = strings.Repeat("the onboarding process was confusing ", 3)
)

type testSuite struct {
	suite.Suite
	logger      *logging.FakeLogger
	experiences *experience.FakeRepository
	publisher   *experience.FakeCreatedPublisher
	service     services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.experiences = experience.NewFakeRepository()
	suite.publisher = experience.NewFakeCreatedPublisher()
	suite.service = New(
		suite.logger,
		suite.experiences,
		fingerprint.NewFakeFingerprinter(),
		experience.NewFakeIdentityGenerator(NextID),
		suite.publisher,
		func() time.Time { return Now },
		time.Hour,
		5,
	)
}

func TestCreateExperienceService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	result, err := suite.service.Run(context.Background(), Input{
		Content: ValidContent,
		Address: Address,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(NextID, result.Experience.ID)
	assert.Equal(uint64(0), result.Experience.Views)
	assert.Equal(Now, result.Experience.CreatedAt)
	assert.Len(suite.experiences.Experiences, 1)
	assert.Len(suite.publisher.Published, 1)
}

func (suite *testSuite) TestHoneypotRejected() {
	_, err := suite.service.Run(context.Background(), Input{
		Content: ValidContent,
		Address: Address,
		Spam:    antispam.Fields{Website: "https://spam.example.com"},
	})

	assert := suite.Require()
	assert.ErrorIs(err, antispam.ErrSpamDetected)
	assert.Empty(suite.experiences.Experiences)
}

func (suite *testSuite) TestTooFastRejected() {
	_, err := suite.service.Run(context.Background(), Input{
		Content: ValidContent,
		Address: Address,
		Spam:    antispam.Fields{ElapsedMs: c.NewOptional("100", true)},
	})

	assert := suite.Require()
	assert.ErrorIs(err, antispam.ErrSubmittedTooFast)
	assert.Empty(suite.experiences.Experiences)
}

func (suite *testSuite) TestContentTooShort() {
	_, err := suite.service.Run(context.Background(), Input{
		Content: "too short",
		Address: Address,
	})

	assert := suite.Require()
	assert.ErrorIs(err, experience.ErrContentTooShort)
	assert.Empty(suite.experiences.Experiences)
}

func (suite *testSuite) TestContentTrimmedBeforeValidation() {
	// 49 characters plus surrounding whitespace must still be too short.
	content := "   " + strings.Repeat("a", 49) + "   "
	_, err := suite.service.Run(context.Background(), Input{Content: content, Address: Address})

	suite.Require().ErrorIs(err, experience.ErrContentTooShort)
}

func (suite *testSuite) TestContentTooLong() {
	_, err := suite.service.Run(context.Background(), Input{
		Content: strings.Repeat("a", experience.MaxContentLength+1),
		Address: Address,
	})

	assert := suite.Require()
	assert.ErrorIs(err, experience.ErrContentTooLong)
	assert.Empty(suite.experiences.Experiences)
}

func (suite *testSuite) TestContentSanitized() {
	content := ValidContent + " <script>alert('x')</script>"
	result, err := suite.service.Run(context.Background(), Input{Content: content, Address: Address})

	assert := suite.Require()
	assert.Nil(err)
	assert.NotContains(result.Experience.Content, "<")
	assert.NotContains(result.Experience.Content, ">")
	assert.Contains(result.Experience.Content, "&lt;script&gt;")
}

func (suite *testSuite) TestSubmissionLimit() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := suite.service.Run(ctx, Input{Content: ValidContent, Address: Address})
		suite.Require().Nil(err)
	}

	_, err := suite.service.Run(ctx, Input{Content: ValidContent, Address: Address})

	assert := suite.Require()
	assert.ErrorIs(err, experience.ErrSubmissionLimitExceeded)
	assert.Len(suite.experiences.Experiences, 5)
}

func (suite *testSuite) TestSubmissionLimitIsPerFingerprint() {
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := suite.service.Run(ctx, Input{Content: ValidContent, Address: Address})
		suite.Require().Nil(err)
	}

	_, err := suite.service.Run(ctx, Input{Content: ValidContent, Address: "198.51.100.23"})

	assert := suite.Require()
	assert.Nil(err)
	assert.Len(suite.experiences.Experiences, 6)
}

func (suite *testSuite) TestSubmissionsOutsideWindowNotCounted() {
	old := experience.Experience{
		ID:          "old",
		Content:     ValidContent,
		Fingerprint: fingerprint.Fingerprint("fp::" + Address),
		CreatedAt:   Now.Add(-2 * time.Hour),
	}
	for i := 0; i < 5; i++ {
		suite.experiences.Experiences = append(suite.experiences.Experiences, old)
	}

	_, err := suite.service.Run(context.Background(), Input{Content: ValidContent, Address: Address})

	suite.Require().Nil(err)
}

func (suite *testSuite) TestStoreFailure() {
	storeErr := errors.New("connection reset")
	suite.experiences.CreateError = storeErr

	_, err := suite.service.Run(context.Background(), Input{Content: ValidContent, Address: Address})

	suite.Require().ErrorIs(err, storeErr)
}

func (suite *testSuite) TestPublishFailureDoesNotFailSubmission() {
	suite.publisher.Error = errors.New("feed unavailable")

	result, err := suite.service.Run(context.Background(), Input{Content: ValidContent, Address: Address})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(NextID, result.Experience.ID)
}
