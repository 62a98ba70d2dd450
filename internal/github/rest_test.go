package github

import (
	"net/http"
	"testing"

	gogithub "github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/require"
)

func apiError(status int) error {
	return &gogithub.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    &http.Request{},
		},
		Message: "nope",
	}
}

func TestMapAPIError_PermissionDenied(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		err := mapAPIError("write file", apiError(status))
		require.ErrorIs(t, err, ErrPermissionDenied, "status %d", status)
	}
}

func TestMapAPIError_OtherStatusPropagates(t *testing.T) {
	err := mapAPIError("write file", apiError(http.StatusConflict))
	require.NotErrorIs(t, err, ErrPermissionDenied)
	require.Contains(t, err.Error(), "write file")
}

func TestStatusOf(t *testing.T) {
	require.Equal(t, http.StatusNotFound, statusOf(apiError(http.StatusNotFound), nil))
	require.Equal(t, 0, statusOf(nil, nil))
}

func TestNewRESTClient_WiresRepo(t *testing.T) {
	c := NewRESTClient(mustRef(t, "acme/prd-registry"), "token")
	require.NotNil(t, c)
	require.Equal(t, "acme", c.repo.Owner)
	require.Equal(t, "prd-registry", c.repo.Name)
	require.NotNil(t, c.defaultBranch)
}
