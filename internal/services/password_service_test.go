package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

// SetupTest runs before each test
func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService()
}

// TestPasswordServiceSuite runs the test suite
func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword_ValidPassword() {
	err := s.service.ValidatePassword("SecurePass123")
	s.NoError(err)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_Empty() {
	err := s.service.ValidatePassword("")
	s.ErrorIs(err, ErrPasswordEmpty)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooShort() {
	err := s.service.ValidatePassword("Sh0rt")
	s.Error(err)
	s.Contains(err.Error(), "password must be at least 8 characters")
}

func (s *PasswordServiceTestSuite) TestValidatePassword_TooLong() {
	err := s.service.ValidatePassword("A1" + strings.Repeat("a", 71))
	s.ErrorIs(err, ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingUppercase() {
	err := s.service.ValidatePassword("securepass123")
	s.ErrorIs(err, ErrPasswordNoUppercase)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingLowercase() {
	err := s.service.ValidatePassword("SECUREPASS123")
	s.ErrorIs(err, ErrPasswordNoLowercase)
}

func (s *PasswordServiceTestSuite) TestValidatePassword_MissingNumber() {
	err := s.service.ValidatePassword("SecurePassword")
	s.ErrorIs(err, ErrPasswordNoNumber)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Valid() {
	hash, err := s.service.HashPassword("SecurePass123")
	s.NoError(err)
	s.NotEmpty(hash)
	s.NotEqual("SecurePass123", hash)
}

func (s *PasswordServiceTestSuite) TestHashPassword_InvalidPassword() {
	hash, err := s.service.HashPassword("weak")
	s.Error(err)
	s.Empty(hash)
}

func (s *PasswordServiceTestSuite) TestComparePassword_Match() {
	hash, err := s.service.HashPassword("SecurePass123")
	s.Require().NoError(err)

	s.True(s.service.ComparePassword("SecurePass123", hash))
}

func (s *PasswordServiceTestSuite) TestComparePassword_Mismatch() {
	hash, err := s.service.HashPassword("SecurePass123")
	s.Require().NoError(err)

	s.False(s.service.ComparePassword("WrongPass123", hash))
}
