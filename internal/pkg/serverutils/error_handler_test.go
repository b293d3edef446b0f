package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name string `json:"name" validate:"required,max=5"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Name: "ok"}))

	err := ValidateRequest(sampleRequest{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["Name"])

	err = ValidateRequest(sampleRequest{Name: "too long"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "must be at most 5 characters", verr.Fields["Name"])
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("message", "abc", "max=3"))

	err := ValidateVar("message", "abcd", "max=3")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "message must be at most 3 characters")
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "bad body")
	})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return ValidateRequest(sampleRequest{})
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	tests := []struct {
		path        string
		wantCode    int
		wantMessage string
	}{
		{"/fiber", 400, "bad body"},
		{"/validation", 400, "validation failed: Name is required"},
		{"/plain", 500, "Internal server error"},
		{"/missing", 404, "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(strings.TrimPrefix(tt.path, "/"), func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var res BaseResponse[any]
			require.NoError(t, json.Unmarshal(body, &res))
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, tt.wantMessage, res.Message)
		})
	}
}

func TestValidationErrorListsFieldsInOrder(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"SessionId": "must be at most 128 characters",
		"Format":    "must be one of [text html]",
		"Message":   "is required",
	}}

	want := "validation failed: Format must be one of [text html], Message is required, SessionId must be at most 128 characters"
	for i := 0; i < 20; i++ {
		assert.Equal(t, want, err.Error())
	}
}
