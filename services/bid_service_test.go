package services

import (
	"errors"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/gigflow/gigflow-go/dto"
	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
	"github.com/gigflow/gigflow-go/repositories/mock_repositories"
	"github.com/gigflow/gigflow-go/utils"
	"github.com/gigflow/gigflow-go/websocket"
)

// --------------------- Setup ---------------------

type fakeNotifier struct {
	mu     sync.Mutex
	events map[uint][]websocket.Event
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{events: make(map[uint][]websocket.Event)}
}

func (f *fakeNotifier) Publish(userID uint, event websocket.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[userID] = append(f.events[userID], event)
}

func (f *fakeNotifier) eventsFor(userID uint) []websocket.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events[userID]
}

func setupBidServiceMocks(t *testing.T) (*BidService, *mock_repositories.MockBidRepo, *mock_repositories.MockGigRepo, *fakeNotifier) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockBid := mock_repositories.NewMockBidRepo(ctrl)
	mockGig := mock_repositories.NewMockGigRepo(ctrl)
	repos := &repositories.Repos{
		Bid: mockBid,
		Gig: mockGig,
	}
	notifier := newFakeNotifier()
	svc := NewBidService(repos, notifier)
	return svc, mockBid, mockGig, notifier
}

func stubAudit(t *testing.T) {
	old := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, repo repositories.AuditRepo, action, resourceType, resourceID string, oldData, newData interface{}) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = old })
}

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	return c
}

// --------------------- SubmitBid ---------------------

func TestSubmitBid_Success(t *testing.T) {
	svc, mockBid, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, Title: "Build a website", Budget: 500, OwnerID: 1, Status: models.GigStatusOpen}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)
	mockBid.EXPECT().HasBid(uint(1), uint(2)).Return(false, nil)
	mockBid.EXPECT().CreateBid(gomock.Any()).DoAndReturn(func(b *models.Bid) error {
		b.BID = 10
		return nil
	})
	mockBid.EXPECT().GetBidResolved(uint(10)).Return(models.Bid{
		BID: 10, GigID: 1, FreelancerID: 2, Message: "I can do this", Price: 400,
		Status: models.BidStatusPending, Gig: &gig,
	}, nil)

	bid, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "I can do this", Price: 400})
	assert.NoError(t, err)
	assert.Equal(t, models.BidStatusPending, bid.Status)
	assert.Equal(t, uint(1), bid.GigID)
	assert.NotNil(t, bid.Gig)
	assert.Equal(t, "Build a website", bid.Gig.Title)
}

func TestSubmitBid_InvalidInput(t *testing.T) {
	svc, _, _, _ := setupBidServiceMocks(t)

	_, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "   ", Price: 400})
	assert.Equal(t, ErrInvalidBid, err)

	_, err = svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "hello", Price: 0})
	assert.Equal(t, ErrInvalidBid, err)
}

func TestSubmitBid_GigNotFound(t *testing.T) {
	svc, _, mockGig, _ := setupBidServiceMocks(t)

	mockGig.EXPECT().GetGigByID(uint(99)).Return(models.Gig{}, gorm.ErrRecordNotFound)

	_, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 99, Message: "hello", Price: 100})
	assert.Equal(t, ErrGigNotFound, err)
}

func TestSubmitBid_GigAssigned(t *testing.T) {
	svc, _, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusAssigned}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)

	_, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "hello", Price: 100})
	assert.Equal(t, ErrGigNotOpen, err)
}

func TestSubmitBid_OwnGig(t *testing.T) {
	svc, _, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, OwnerID: 2, Status: models.GigStatusOpen}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)

	_, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "hello", Price: 100})
	assert.Equal(t, ErrOwnGigBid, err)
}

func TestSubmitBid_Duplicate(t *testing.T) {
	svc, mockBid, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusOpen}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)
	mockBid.EXPECT().HasBid(uint(1), uint(2)).Return(true, nil)

	_, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "hello", Price: 100})
	assert.Equal(t, ErrDuplicateBid, err)
}

func TestSubmitBid_DuplicateRace(t *testing.T) {
	// The existence check passes but the unique index trips on insert.
	svc, mockBid, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusOpen}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)
	mockBid.EXPECT().HasBid(uint(1), uint(2)).Return(false, nil)
	mockBid.EXPECT().CreateBid(gomock.Any()).Return(repositories.ErrDuplicateBid)

	_, err := svc.SubmitBid(2, dto.CreateBidDTO{GigID: 1, Message: "hello", Price: 100})
	assert.Equal(t, ErrDuplicateBid, err)
}

// --------------------- ListBidsForGig ---------------------

func TestListBidsForGig_Success(t *testing.T) {
	svc, mockBid, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, OwnerID: 7, Status: models.GigStatusOpen}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)
	mockBid.EXPECT().ListBidsByGig(uint(1)).Return([]models.Bid{{BID: 2}, {BID: 1}}, nil)

	bids, err := svc.ListBidsForGig(1, 7)
	assert.NoError(t, err)
	assert.Len(t, bids, 2)
}

func TestListBidsForGig_NotOwner(t *testing.T) {
	svc, _, mockGig, _ := setupBidServiceMocks(t)

	gig := models.Gig{GID: 1, OwnerID: 7, Status: models.GigStatusOpen}
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)

	bids, err := svc.ListBidsForGig(1, 8)
	assert.Equal(t, ErrNotGigOwner, err)
	assert.Nil(t, bids)
}

func TestListBidsForGig_GigNotFound(t *testing.T) {
	svc, _, mockGig, _ := setupBidServiceMocks(t)

	mockGig.EXPECT().GetGigByID(uint(42)).Return(models.Gig{}, gorm.ErrRecordNotFound)

	_, err := svc.ListBidsForGig(42, 7)
	assert.Equal(t, ErrGigNotFound, err)
}

// --------------------- Hire ---------------------

func TestHire_Success(t *testing.T) {
	svc, mockBid, mockGig, notifier := setupBidServiceMocks(t)
	stubAudit(t)

	gig := models.Gig{GID: 1, Title: "Build a website", Budget: 500, OwnerID: 1, Status: models.GigStatusOpen}
	winner := models.Bid{BID: 10, GigID: 1, FreelancerID: 2, Price: 400, Status: models.BidStatusPending}
	loser := models.Bid{BID: 11, GigID: 1, FreelancerID: 3, Price: 450, Status: models.BidStatusRejected}

	mockBid.EXPECT().GetBidByID(uint(10)).Return(winner, nil)
	mockGig.EXPECT().GetGigByID(uint(1)).Return(gig, nil)
	mockBid.EXPECT().ExecuteHire(uint(1), uint(10)).Return([]models.Bid{loser}, nil)
	mockBid.EXPECT().GetBidResolved(uint(10)).Return(models.Bid{
		BID: 10, GigID: 1, FreelancerID: 2, Price: 400, Status: models.BidStatusHired, Gig: &gig,
	}, nil)

	bid, err := svc.Hire(testContext(), 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.BidStatusHired, bid.Status)

	hired := notifier.eventsFor(2)
	if assert.Len(t, hired, 1) {
		assert.Equal(t, websocket.EventHired, hired[0].Event)
		assert.Equal(t, "Build a website", hired[0].GigTitle)
		assert.Equal(t, uint(1), hired[0].GigID)
		assert.Equal(t, uint(10), hired[0].BidID)
	}

	rejected := notifier.eventsFor(3)
	if assert.Len(t, rejected, 1) {
		assert.Equal(t, websocket.EventBidRejected, rejected[0].Event)
		assert.Equal(t, uint(11), rejected[0].BidID)
	}
}

func TestHire_BidNotFound(t *testing.T) {
	svc, mockBid, _, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetBidByID(uint(99)).Return(models.Bid{}, gorm.ErrRecordNotFound)

	_, err := svc.Hire(testContext(), 99, 1)
	assert.Equal(t, ErrBidNotFound, err)
}

func TestHire_BidNotPending(t *testing.T) {
	svc, mockBid, _, notifier := setupBidServiceMocks(t)

	mockBid.EXPECT().GetBidByID(uint(10)).Return(models.Bid{BID: 10, GigID: 1, Status: models.BidStatusRejected}, nil)

	_, err := svc.Hire(testContext(), 10, 1)
	assert.Equal(t, ErrBidNotPending, err)
	assert.Empty(t, notifier.eventsFor(2))
}

func TestHire_NotOwner(t *testing.T) {
	svc, mockBid, mockGig, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetBidByID(uint(10)).Return(models.Bid{BID: 10, GigID: 1, Status: models.BidStatusPending}, nil)
	mockGig.EXPECT().GetGigByID(uint(1)).Return(models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusOpen}, nil)

	_, err := svc.Hire(testContext(), 10, 5)
	assert.Equal(t, ErrNotGigOwner, err)
}

func TestHire_GigAssigned(t *testing.T) {
	svc, mockBid, mockGig, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().GetBidByID(uint(10)).Return(models.Bid{BID: 10, GigID: 1, Status: models.BidStatusPending}, nil)
	mockGig.EXPECT().GetGigByID(uint(1)).Return(models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusAssigned}, nil)

	_, err := svc.Hire(testContext(), 10, 1)
	assert.Equal(t, ErrGigNotOpen, err)
}

func TestHire_LostRace(t *testing.T) {
	// Both requests pass the open-check; the conditional update decides.
	svc, mockBid, mockGig, notifier := setupBidServiceMocks(t)

	mockBid.EXPECT().GetBidByID(uint(11)).Return(models.Bid{BID: 11, GigID: 1, FreelancerID: 3, Status: models.BidStatusPending}, nil)
	mockGig.EXPECT().GetGigByID(uint(1)).Return(models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusOpen}, nil)
	mockBid.EXPECT().ExecuteHire(uint(1), uint(11)).Return(nil, repositories.ErrGigNotOpen)

	_, err := svc.Hire(testContext(), 11, 1)
	assert.Equal(t, ErrGigNotOpen, err)
	assert.Empty(t, notifier.eventsFor(3))
}

func TestHire_StoreFailure(t *testing.T) {
	svc, mockBid, mockGig, notifier := setupBidServiceMocks(t)

	mockBid.EXPECT().GetBidByID(uint(10)).Return(models.Bid{BID: 10, GigID: 1, FreelancerID: 2, Status: models.BidStatusPending}, nil)
	mockGig.EXPECT().GetGigByID(uint(1)).Return(models.Gig{GID: 1, OwnerID: 1, Status: models.GigStatusOpen}, nil)
	mockBid.EXPECT().ExecuteHire(uint(1), uint(10)).Return(nil, errors.New("connection reset"))

	_, err := svc.Hire(testContext(), 10, 1)
	assert.Error(t, err)
	assert.NotEqual(t, ErrGigNotOpen, err)
	assert.Empty(t, notifier.eventsFor(2))
}

// --------------------- ListMyBids ---------------------

func TestListMyBids(t *testing.T) {
	svc, mockBid, _, _ := setupBidServiceMocks(t)

	mockBid.EXPECT().ListBidsByFreelancer(uint(2)).Return([]models.Bid{{BID: 3}, {BID: 1}}, nil)

	bids, err := svc.ListMyBids(2)
	assert.NoError(t, err)
	assert.Len(t, bids, 2)
}
