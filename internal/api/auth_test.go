package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"uparjan/internal/domain"
	"uparjan/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AuthTestSuite exercises the register and login endpoints
type AuthTestSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
}

// SetupTest runs before each test
func (suite *AuthTestSuite) SetupTest() {
	suite.router, suite.db = newTestRouter(suite.T())
}

func (suite *AuthTestSuite) TestRegisterThenLogin() {
	t := suite.T()

	w := doJSON(t, suite.router, http.MethodPost, "/auth/register",
		gin.H{"email": "a@b.com", "password": "secret123"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var user UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "a@b.com", user.Email)

	// The same credentials log in successfully
	w = doJSON(t, suite.router, http.MethodPost, "/auth/login",
		gin.H{"email": "a@b.com", "password": "secret123"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tok TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	assert.Equal(t, "bearer", tok.TokenType)

	// The issued token carries the email as subject
	claims, err := utils.ParseJWT(tok.AccessToken, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Subject)
}

func (suite *AuthTestSuite) TestRegisterDuplicateEmail() {
	t := suite.T()

	w := doJSON(t, suite.router, http.MethodPost, "/auth/register",
		gin.H{"email": "a@b.com", "password": "secret123"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Second registration with the same email conflicts
	w = doJSON(t, suite.router, http.MethodPost, "/auth/register",
		gin.H{"email": "a@b.com", "password": "other-password"}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// No second record was created
	var count int64
	require.NoError(t, suite.db.Model(&domain.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func (suite *AuthTestSuite) TestLoginFailuresAreIndistinguishable() {
	t := suite.T()

	w := doJSON(t, suite.router, http.MethodPost, "/auth/register",
		gin.H{"email": "a@b.com", "password": "secret123"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong password for a known email
	wrongPw := doJSON(t, suite.router, http.MethodPost, "/auth/login",
		gin.H{"email": "a@b.com", "password": "wrong-password"}, nil)
	// Unknown email entirely
	unknown := doJSON(t, suite.router, http.MethodPost, "/auth/login",
		gin.H{"email": "nobody@b.com", "password": "secret123"}, nil)

	// Same status and same message, so responses leak nothing about which
	// field was wrong
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPw.Body.String(), unknown.Body.String())
}

func (suite *AuthTestSuite) TestRegisterStorageFailureIsNotAConflict() {
	t := suite.T()

	// Break the store out from under the handler
	sqlDB, err := suite.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := doJSON(t, suite.router, http.MethodPost, "/auth/register",
		gin.H{"email": "a@b.com", "password": "secret123"}, nil)
	// A storage error is a server error, not "Email already registered"
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func (suite *AuthTestSuite) TestRegisterRejectsMalformedEmail() {
	t := suite.T()

	w := doJSON(t, suite.router, http.MethodPost, "/auth/register",
		gin.H{"email": "not-an-email", "password": "secret123"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
