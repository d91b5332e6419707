package sendGrid_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vortexgear/storefront/internal/models"
	"github.com/vortexgear/storefront/pkg/sendGrid"
)

type sendgridV3Payload struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

// newMockServer captures the last payload and answers with status.
func newMockServer(t *testing.T, status int, payload *sendgridV3Payload) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		defer r.Body.Close()

		if err := json.Unmarshal(body, payload); err != nil {
			http.Error(w, "Failed to unmarshal request body", http.StatusBadRequest)
			return
		}

		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)

	return server
}

func newEmailService(baseURL string) sendGrid.EmailService {
	svc := sendGrid.NewEmailService("SG.test-api-key", "orders@vortex.gg", "Vortex")
	svc.GetSendGridClient().Request.BaseURL = baseURL

	return svc
}

func TestEmailService_Send(t *testing.T) {
	t.Run("Success - Text And HTML", func(t *testing.T) {
		// Arrange
		var payload sendgridV3Payload
		server := newMockServer(t, http.StatusAccepted, &payload)
		svc := newEmailService(server.URL)

		// Act
		err := svc.Send(t.Context(), &sendGrid.Email{
			To:          "ada@example.com",
			Subject:     "Hello",
			Content:     "plain",
			HTMLContent: "<p>html</p>",
		})

		// Assert
		require.NoError(t, err)
		require.Len(t, payload.Personalizations, 1)
		assert.Equal(t, "ada@example.com", payload.Personalizations[0].To[0]["email"])
		assert.Equal(t, "Hello", payload.Personalizations[0].Subject)
		assert.Equal(t, "orders@vortex.gg", payload.From["email"])
		require.Len(t, payload.Content, 2)
		assert.Equal(t, "text/plain", payload.Content[0].Type)
		assert.Equal(t, "text/html", payload.Content[1].Type)
	})

	t.Run("Failure - API Error", func(t *testing.T) {
		var payload sendgridV3Payload
		server := newMockServer(t, http.StatusBadRequest, &payload)
		svc := newEmailService(server.URL)

		err := svc.Send(t.Context(), &sendGrid.Email{To: "bad@example.com", Subject: "x", Content: "y"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status code: 400")
	})

	t.Run("Failure - Network Error", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		svc := newEmailService(server.URL)
		server.Close()

		err := svc.Send(t.Context(), &sendGrid.Email{To: "ada@example.com", Subject: "x", Content: "y"})

		assert.Error(t, err)
	})
}

func TestOrderConfirmation(t *testing.T) {
	// Arrange
	var payload sendgridV3Payload
	server := newMockServer(t, http.StatusAccepted, &payload)
	confirmation := sendGrid.NewOrderConfirmation(newEmailService(server.URL))
	order := &models.Order{
		ID: "tx_abc",
		Items: []models.CartItem{
			{Product: models.Product{ID: "m1", Name: "Pro <Mouse>", Price: 49.99}, Quantity: 2},
		},
		Total: 99.98,
	}

	// Act
	err := confirmation.SendOrderConfirmation(t.Context(), "ada@example.com", "Ada Lovelace", order)

	// Assert
	require.NoError(t, err)
	require.Len(t, payload.Personalizations, 1)
	assert.Equal(t, "Vortex order #tx_abc confirmed", payload.Personalizations[0].Subject)
	assert.Equal(t, "Ada Lovelace", payload.Personalizations[0].To[0]["name"])
	require.Len(t, payload.Content, 2)
	assert.Contains(t, payload.Content[0].Value, "2 x Pro <Mouse>  $99.98")
	assert.Contains(t, payload.Content[0].Value, "Total: $99.98")
	assert.Contains(t, payload.Content[1].Value, "Pro &lt;Mouse&gt;")
}
