package response_test

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/models"
)

func TestOKWithData(t *testing.T) {
	resp := response.OKWithData(map[string]string{"uid": "abc"})
	assert.Equal(t, response.StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestError(t *testing.T) {
	resp := response.Error("invalid request body")
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "invalid request body", resp.Error)
}

func TestValidationError_FormFieldMessages(t *testing.T) {
	validate := validator.New()

	form := models.DummyWiredForm{
		Name:  "홍길동",
		Phone: "01012345678",
	}
	err := validate.Struct(form)
	require.Error(t, err)
	validateErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	resp := response.ValidationError(validateErrs)
	assert.Equal(t, response.StatusError, resp.Status)

	assert.Equal(t, "생년월일을 입력해주세요", resp.Fields["BirthDate"])
	assert.Equal(t, "주소를 입력해주세요", resp.Fields["Address"])
	assert.Equal(t, "우편번호를 입력해주세요", resp.Fields["ZipCode"])
	assert.Equal(t, "납부방법을 선택해주세요", resp.Fields["PaymentMethod"])
	assert.Contains(t, resp.Error, "생년월일을 입력해주세요")
}

func TestValidationError_TagFallbackMessages(t *testing.T) {
	validate := validator.New()

	user := models.DummyUser{
		Name:        "김영희",
		Username:    "kimstaff",
		CompanyCode: "ab",
		Role:        "user",
	}
	err := validate.Struct(user)
	require.Error(t, err)
	validateErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	resp := response.ValidationError(validateErrs)
	assert.Equal(t, response.StatusError, resp.Status)
	assert.Equal(t, "field Password is a required field", resp.Fields["Password"])
	assert.Equal(t, "field CompanyCode can contain only numbers", resp.Fields["CompanyCode"])
}
