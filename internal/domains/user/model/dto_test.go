package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Email:     "chef@example.com",
		Username:  "chef.2024",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "correct-horse",
	}
}

func TestRegisterRequest_Valid(t *testing.T) {
	req := validRegisterRequest()
	assert.NoError(t, req.Validate())
}

func TestRegisterRequest_RejectsBadEmail(t *testing.T) {
	req := validRegisterRequest()
	req.Email = "not-an-email"
	assert.Error(t, req.Validate())
}

func TestRegisterRequest_RejectsBadUsername(t *testing.T) {
	req := validRegisterRequest()
	req.Username = "has spaces"
	assert.Error(t, req.Validate())
}

func TestRegisterRequest_RejectsShortPassword(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "short"
	assert.Error(t, req.Validate())
}

func TestListUsersRequest_Normalize(t *testing.T) {
	req := ListUsersRequest{Page: -3, Limit: 0}
	req.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.Limit)
}
