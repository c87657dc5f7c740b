package delivery

import (
	"fmt"
	"net/http"
	"order_api/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCreateReturns201(t *testing.T) {
	uc := &stubMessageUseCase{
		createFn: func(text string) (*domain.Message, error) {
			assert.Equal(t, "hello", text)
			return &domain.Message{ID: 1, Message: text}, nil
		},
	}
	router := setupRouter(NewMessageHandler(uc, testLogger()))

	recorder := performRequest(router, http.MethodPost, "/message", []byte(`{"message":"hello"}`))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"message":"hello"`)
}

func TestMessageCreateEmptyReturns400(t *testing.T) {
	uc := &stubMessageUseCase{
		createFn: func(text string) (*domain.Message, error) {
			return nil, fmt.Errorf("message cannot be empty")
		},
	}
	router := setupRouter(NewMessageHandler(uc, testLogger()))

	recorder := performRequest(router, http.MethodPost, "/message", []byte(`{"message":""}`))

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "message cannot be empty")
}

func TestMessageGetByIDNotFoundHasEmptyBody(t *testing.T) {
	uc := &stubMessageUseCase{
		getByIDFn: func(id int) (*domain.Message, error) {
			return nil, fmt.Errorf("message with id %d: %w", id, domain.ErrNotFound)
		},
	}
	router := setupRouter(NewMessageHandler(uc, testLogger()))

	recorder := performRequest(router, http.MethodGet, "/message/9", nil)

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestMessageDeleteReturns204(t *testing.T) {
	uc := &stubMessageUseCase{
		deleteFn: func(id int) error {
			assert.Equal(t, 2, id)
			return nil
		},
	}
	router := setupRouter(NewMessageHandler(uc, testLogger()))

	recorder := performRequest(router, http.MethodDelete, "/message/2", nil)

	require.Equal(t, http.StatusNoContent, recorder.Code)
}
