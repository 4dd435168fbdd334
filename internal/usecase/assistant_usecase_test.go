package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innovest/internal/infrastructure/gemini"
	"innovest/pkg/errors"
)

func completionServer(t *testing.T, status int, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-goog-api-key"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}

		payload := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": text}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
}

func newAssistantFixture(server *httptest.Server) *AssistantUseCase {
	profileRepo := newFakeProfileRepo()
	profileRepo.add("alice", "Alice Investor", "investor")
	profileRepo.add("bob", "Bob Founder", "founder")

	client := gemini.NewClientWithBaseURL("test-key", "gemini-2.0-flash", server.URL)
	return NewAssistantUseCase(profileRepo, client)
}

func TestGenerateReplyReturnsCompletion(t *testing.T) {
	server := completionServer(t, http.StatusOK, "Diversify across stages.")
	defer server.Close()

	uc := newAssistantFixture(server)

	reply, err := uc.GenerateReply(context.Background(), "alice", "How should I structure my portfolio?")
	require.NoError(t, err)
	assert.Equal(t, "Diversify across stages.", reply)
}

func TestGenerateReplyFallsBackOnEndpointFailure(t *testing.T) {
	server := completionServer(t, http.StatusInternalServerError, "")
	defer server.Close()

	uc := newAssistantFixture(server)

	// Upstream failures degrade to the canned apology, not an error.
	reply, err := uc.GenerateReply(context.Background(), "bob", "How do I raise a seed round?")
	require.NoError(t, err)
	assert.Equal(t, assistantFallback, reply)
}

func TestGenerateReplyRejectsBlankQuestion(t *testing.T) {
	server := completionServer(t, http.StatusOK, "unused")
	defer server.Close()

	uc := newAssistantFixture(server)

	_, err := uc.GenerateReply(context.Background(), "alice", "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestBuildPromptIsRoleSpecific(t *testing.T) {
	investor := buildPrompt("investor", "What sectors are hot?")
	assert.Contains(t, investor, "due diligence")
	assert.Contains(t, investor, "What sectors are hot?")

	founder := buildPrompt("founder", "How do I pitch?")
	assert.Contains(t, founder, "fundraising strategies")
	assert.Contains(t, founder, "How do I pitch?")
}
