package mediator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidrhall/conquest-go/internal/application/mediator"
)

type pingRequest struct{ Payload string }

type pingHandler struct{}

func (pingHandler) Handle(_ context.Context, request mediator.Request) (mediator.Response, error) {
	return "pong:" + request.(pingRequest).Payload, nil
}

func TestMediator_RegisterAndSend(t *testing.T) {
	// Arrange
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[pingRequest](m, pingHandler{}))

	// Act
	response, err := m.Send(context.Background(), pingRequest{Payload: "x"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pong:x", response)
}

func TestMediator_DuplicateRegistration(t *testing.T) {
	m := mediator.NewMediator()
	require.NoError(t, mediator.RegisterHandler[pingRequest](m, pingHandler{}))

	err := mediator.RegisterHandler[pingRequest](m, pingHandler{})

	assert.Error(t, err)
}

func TestMediator_UnregisteredRequest(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), pingRequest{})

	assert.Error(t, err)
}

func TestMediator_NilRequest(t *testing.T) {
	m := mediator.NewMediator()

	_, err := m.Send(context.Background(), nil)

	assert.Error(t, err)
}
