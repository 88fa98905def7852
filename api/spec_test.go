package api

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		"/api/booking",
		"/api/booking/{id}",
		"/api/booking/{id}/confirm",
		"/api/booking/{id}/cancel",
		"/api/me/booking",
		"/api/users/{id}/booking",
	} {
		assert.NotNil(t, doc.Paths.Value(path), path)
	}
}

func TestGetSwagger_AdminOperationsRequireAdminScope(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for _, op := range []*openapi3.Operation{
		doc.Paths.Value("/api/movie").Post,
		doc.Paths.Value("/api/movie/{id}").Put,
		doc.Paths.Value("/api/movie/{id}").Delete,
		doc.Paths.Value("/api/showtime").Post,
		doc.Paths.Value("/api/showtime/{id}").Put,
		doc.Paths.Value("/api/showtime/{id}").Delete,
	} {
		require.NotNil(t, op.Security, op.OperationID)
		assert.Equal(t, []string{"admin"}, (*op.Security)[0]["bearerAuth"], op.OperationID)
	}

	for _, op := range []*openapi3.Operation{
		doc.Paths.Value("/api/healthcheck").Get,
		doc.Paths.Value("/api/register").Post,
		doc.Paths.Value("/api/login").Post,
	} {
		require.NotNil(t, op.Security, op.OperationID)
		assert.Empty(t, *op.Security, op.OperationID)
	}
}
