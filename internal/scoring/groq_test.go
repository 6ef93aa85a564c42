package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphafinders/teabot/internal/models"
)

func TestNewGroqClientWithoutKey(t *testing.T) {
	assert.Nil(t, NewGroqClient("", 5*time.Second, nil))
}

func TestGroqRecommend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req groqRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, groqModel, req.Model)
		assert.Equal(t, 150, req.MaxTokens)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "TEA")

		fmt.Fprint(w, `{"choices":[{"message":{"content":"  High risk, small position only.  "}}]}`)
	}))
	defer srv.Close()

	c := NewGroqClient("test-key", 5*time.Second, nil)
	c.apiURL = srv.URL

	token := models.TokenRecord{Symbol: "TEA", Name: "Tea Token"}
	text, err := c.Recommend(context.Background(), &token)

	require.NoError(t, err)
	assert.Equal(t, "High risk, small position only.", text)
}

func TestGroqDetailedAnalysisMaxTokens(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req groqRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 300, req.MaxTokens)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"Detailed view."}}]}`)
	}))
	defer srv.Close()

	c := NewGroqClient("test-key", 5*time.Second, nil)
	c.apiURL = srv.URL

	text, err := c.DetailedAnalysis(context.Background(), &models.TokenRecord{Symbol: "TEA"})

	require.NoError(t, err)
	assert.Equal(t, "Detailed view.", text)
}

func TestGroqErrorResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewGroqClient("test-key", 5*time.Second, nil)
	c.apiURL = srv.URL

	_, err := c.Recommend(context.Background(), &models.TokenRecord{Symbol: "TEA"})
	assert.ErrorContains(t, err, "status 429")
}

func TestGroqNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer srv.Close()

	c := NewGroqClient("test-key", 5*time.Second, nil)
	c.apiURL = srv.URL

	_, err := c.Recommend(context.Background(), &models.TokenRecord{Symbol: "TEA"})
	assert.ErrorContains(t, err, "no choices")
}
