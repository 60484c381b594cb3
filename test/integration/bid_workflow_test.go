//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigflow/gigflow-go/db"
	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
	"github.com/gigflow/gigflow-go/response"
)

func createGig(t *testing.T, token, title string) models.Gig {
	t.Helper()
	client := NewHTTPClient(GetTestContext().Router, token)
	resp, err := client.POST("/api/gigs", map[string]interface{}{
		"title":       title,
		"description": "Integration test gig",
		"budget":      500,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

	var created response.GigResponse
	require.NoError(t, resp.DecodeJSON(&created))
	return created.Gig
}

func placeBid(t *testing.T, token string, gigID uint, price float64) models.Bid {
	t.Helper()
	client := NewHTTPClient(GetTestContext().Router, token)
	resp, err := client.POST("/api/bids", map[string]interface{}{
		"gigId":   gigID,
		"message": "I can do this",
		"price":   price,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode, resp.GetErrorMessage())

	var created response.BidResponse
	require.NoError(t, resp.DecodeJSON(&created))
	return created.Bid
}

func TestBidWorkflow_Integration(t *testing.T) {
	ctx := GetTestContext()
	gig := createGig(t, ctx.OwnerToken, "Workflow gig")

	t.Run("Bid - Rejected on Own Gig", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err := client.POST("/api/bids", map[string]interface{}{
			"gigId": gig.GID, "message": "me please", "price": 100,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Cannot bid on your own gig", resp.GetErrorMessage())
	})

	t.Run("Bid - Unauthorized without Token", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")
		resp, err := client.POST("/api/bids", map[string]interface{}{
			"gigId": gig.GID, "message": "hello", "price": 100,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	bidOne := placeBid(t, ctx.FreelancerOneT, gig.GID, 400)
	bidTwo := placeBid(t, ctx.FreelancerTwoT, gig.GID, 450)

	t.Run("Bid - Duplicate Rejected", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.FreelancerOneT)
		resp, err := client.POST("/api/bids", map[string]interface{}{
			"gigId": gig.GID, "message": "again", "price": 350,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "You have already bid on this gig", resp.GetErrorMessage())
	})

	t.Run("ListBids - Owner Only", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.FreelancerOneT)
		resp, err := client.GET(fmt.Sprintf("/api/bids/%d", gig.GID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		client = NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err = client.GET(fmt.Sprintf("/api/bids/%d", gig.GID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list response.BidListResponse
		require.NoError(t, resp.DecodeJSON(&list))
		assert.Len(t, list.Bids, 2)
	})

	t.Run("Hire - Forbidden for Non-Owner", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.FreelancerTwoT)
		resp, err := client.PATCH(fmt.Sprintf("/api/bids/%d/hire", bidOne.BID), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Hire - Success Settles Gig and Bids", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err := client.PATCH(fmt.Sprintf("/api/bids/%d/hire", bidOne.BID), nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, resp.GetErrorMessage())

		var hired response.BidResponse
		require.NoError(t, resp.DecodeJSON(&hired))
		assert.Equal(t, "Freelancer hired successfully", hired.Message)
		assert.Equal(t, models.BidStatusHired, hired.Bid.Status)

		getResp, err := client.GET(fmt.Sprintf("/api/gigs/%d", gig.GID))
		require.NoError(t, err)
		var got response.GigResponse
		require.NoError(t, getResp.DecodeJSON(&got))
		assert.Equal(t, models.GigStatusAssigned, got.Gig.Status)
	})

	t.Run("MyBids - Loser Sees Rejection", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.FreelancerTwoT)
		resp, err := client.GET("/api/bids/my-bids")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list response.BidListResponse
		require.NoError(t, resp.DecodeJSON(&list))

		found := false
		for _, b := range list.Bids {
			if b.BID == bidTwo.BID {
				found = true
				assert.Equal(t, models.BidStatusRejected, b.Status)
				require.NotNil(t, b.Gig)
				assert.Equal(t, gig.GID, b.Gig.GID)
			}
		}
		assert.True(t, found, "expected bid %d in my-bids", bidTwo.BID)
	})

	t.Run("Hire - Rejected Bid No Longer Hirable", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
		resp, err := client.PATCH(fmt.Sprintf("/api/bids/%d/hire", bidTwo.BID), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "This bid is no longer pending", resp.GetErrorMessage())
	})

	t.Run("Bid - Rejected on Assigned Gig", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, ctx.FreelancerTwoT)
		resp, err := client.POST("/api/bids", map[string]interface{}{
			"gigId": gig.GID, "message": "late", "price": 300,
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Cannot bid on a gig that is already assigned", resp.GetErrorMessage())
	})

	t.Run("Browse - Assigned Gig Hidden", func(t *testing.T) {
		client := NewHTTPClient(ctx.Router, "")
		resp, err := client.GET("/api/gigs", map[string]string{"limit": "100"})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list response.GigListResponse
		require.NoError(t, resp.DecodeJSON(&list))
		for _, g := range list.Gigs {
			assert.NotEqual(t, gig.GID, g.GID)
		}
	})
}

// Two hire requests race on different bids of the same gig. Exactly one may
// win; the gig ends assigned with one hired bid and one rejected bid.
func TestHireRace_Integration(t *testing.T) {
	ctx := GetTestContext()
	gig := createGig(t, ctx.OwnerToken, "Race gig")
	bidOne := placeBid(t, ctx.FreelancerOneT, gig.GID, 400)
	bidTwo := placeBid(t, ctx.FreelancerTwoT, gig.GID, 450)

	statuses := make([]int, 2)
	var wg sync.WaitGroup
	for i, bidID := range []uint{bidOne.BID, bidTwo.BID} {
		wg.Add(1)
		go func(i int, bidID uint) {
			defer wg.Done()
			client := NewHTTPClient(ctx.Router, ctx.OwnerToken)
			resp, err := client.PATCH(fmt.Sprintf("/api/bids/%d/hire", bidID), nil)
			if err != nil {
				t.Errorf("hire request failed: %v", err)
				return
			}
			statuses[i] = resp.StatusCode
		}(i, bidID)
	}
	wg.Wait()

	wins := 0
	for _, code := range statuses {
		if code == http.StatusOK {
			wins++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, wins, "exactly one hire must win, got statuses %v", statuses)

	var storedGig models.Gig
	require.NoError(t, db.DB.First(&storedGig, gig.GID).Error)
	assert.Equal(t, models.GigStatusAssigned, storedGig.Status)

	var bids []models.Bid
	require.NoError(t, db.DB.Where("gig_id = ?", gig.GID).Find(&bids).Error)
	require.Len(t, bids, 2)

	counts := map[models.BidStatus]int{}
	for _, b := range bids {
		counts[b.Status]++
	}
	assert.Equal(t, 1, counts[models.BidStatusHired])
	assert.Equal(t, 1, counts[models.BidStatusRejected])
	assert.Equal(t, 0, counts[models.BidStatusPending])
}

// The composite unique index is the last line of defense against a double
// insert that slips past the service-level existence check.
func TestDuplicateBidIndex_Integration(t *testing.T) {
	ctx := GetTestContext()
	gig := createGig(t, ctx.OwnerToken, "Unique index gig")

	repos := repositories.New()

	first := &models.Bid{
		GigID:        gig.GID,
		FreelancerID: ctx.FreelancerOne.UID,
		Message:      "first",
		Price:        100,
		Status:       models.BidStatusPending,
	}
	require.NoError(t, repos.Bid.CreateBid(first))

	second := &models.Bid{
		GigID:        gig.GID,
		FreelancerID: ctx.FreelancerOne.UID,
		Message:      "second",
		Price:        200,
		Status:       models.BidStatusPending,
	}
	err := repos.Bid.CreateBid(second)
	assert.ErrorIs(t, err, repositories.ErrDuplicateBid)
}
